package neatjson

import "testing"

var benchDoc = Object(
	Field("name", String("bench-scene")),
	Field("flags", Array(Bool(true), Bool(false), Null())),
	Field("position", Array(Number(12.5), Number(-3.25), Number(0))),
	Field("tiles", func() Value {
		elems := make([]Value, 64)
		for i := range elems {
			elems[i] = Number(float64(i))
		}
		return Array(elems...)
	}()),
	Field("meta", Object(
		Field("author", String("sa6mwa")),
		Field("revision", Number(7)),
		Field("tags", Array(String("level"), String("indoor"))),
	)),
)

var benchFormatSink []byte
var benchCompactSink []byte

func BenchmarkFormat(b *testing.B) {
	for b.Loop() {
		out, err := Format(benchDoc, nil)
		if err != nil {
			b.Fatal(err)
		}
		benchFormatSink = out
	}
}

func BenchmarkFormatUnsorted(b *testing.B) {
	opts := &Options{SortKeys: false}
	for b.Loop() {
		out, err := Format(benchDoc, opts)
		if err != nil {
			b.Fatal(err)
		}
		benchFormatSink = out
	}
}

func BenchmarkCompact(b *testing.B) {
	pretty, err := Format(benchDoc, nil)
	if err != nil {
		b.Fatal(err)
	}
	for b.Loop() {
		out, err := Compact(pretty)
		if err != nil {
			b.Fatal(err)
		}
		benchCompactSink = out
	}
}
