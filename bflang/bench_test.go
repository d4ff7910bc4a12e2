package bflang

import (
	"io"
	"os"
	"testing"
)

func BenchmarkRunHelloWorld(b *testing.B) {
	content, err := os.ReadFile("testdata/hello-world.bf")
	if err != nil {
		b.Fatal(err)
	}
	program := Parse(Lex(string(content)))
	for b.Loop() {
		vm := NewVM(program, &Options{
			Output: io.Discard,
		})
		if err := vm.Run(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParse(b *testing.B) {
	content, err := os.ReadFile("testdata/hello-world.bf")
	if err != nil {
		b.Fatal(err)
	}
	tokens := Lex(string(content))
	for b.Loop() {
		Parse(tokens)
	}
}
