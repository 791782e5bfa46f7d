package hrid_test

import (
	"testing"

	"github.com/dmitrymomot/hrid"
)

func BenchmarkGenerate(b *testing.B) {
	b.Run("Default", func(b *testing.B) {
		gen := hrid.MustNew()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = gen.Generate()
		}
	})

	b.Run("Nice", func(b *testing.B) {
		gen := hrid.MustNew(
			hrid.WithElements("mood", "animal", "place"),
			hrid.WithWordLists(hrid.NiceWordLists),
		)
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = gen.Generate()
		}
	})

	b.Run("WithNumber", func(b *testing.B) {
		gen := hrid.MustNew(hrid.WithElements("adjective", "animal", "number"))
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = gen.Generate()
		}
	})

	b.Run("SingleElement", func(b *testing.B) {
		gen := hrid.MustNew(hrid.WithElements("noun"))
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = gen.Generate()
		}
	})
}

func BenchmarkCodec(b *testing.B) {
	gen := hrid.MustNew()
	id, err := gen.Encode(12345)
	if err != nil {
		b.Fatal(err)
	}

	b.Run("Encode", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if _, err := gen.Encode(12345); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("Decode", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if _, err := gen.Decode(id); err != nil {
				b.Fatal(err)
			}
		}
	})
}
