package main

import (
	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/debugs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Debugs  debugs.Module
}
