package compress_test

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/queryshard/datablock/block"
	"github.com/queryshard/datablock/compress"
	"github.com/queryshard/datablock/internal/varregion"
	"github.com/queryshard/datablock/schema"
)

// benchVariableRegion builds a variable region of roughly numCells BYTES
// cells plus a handful of BIG_DECIMAL and array cells, mirroring the shape
// compressVariable actually receives from a builder's Finish.
func benchVariableRegion(numCells int) []byte {
	w := varregion.NewWriter()
	defer w.Release()

	for i := 0; i < numCells; i++ {
		w.WriteBytes([]byte(fmt.Sprintf("row-%08d-shard:us-east-1-tier:gold-status:active", i)))
	}

	w.WriteBigDecimal(big.NewInt(987654321098765), 4)

	elems := make([]int64, 64)
	for i := range elems {
		elems[i] = int64(i * 37)
	}
	w.WriteInt64Array(elems)

	return append([]byte(nil), w.Bytes()...)
}

var benchCodecSizes = []int{64, 1024, 16384}

func BenchmarkCodec_Compress(b *testing.B) {
	for _, ct := range allCompressionTypes {
		codec, err := compress.CreateCodec(ct, "variable region")
		if err != nil {
			b.Fatal(err)
		}

		for _, numCells := range benchCodecSizes {
			payload := benchVariableRegion(numCells)

			b.Run(fmt.Sprintf("%s/%dcells", ct, numCells), func(b *testing.B) {
				b.SetBytes(int64(len(payload)))
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					if _, err := codec.Compress(payload); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkCodec_Decompress(b *testing.B) {
	for _, ct := range allCompressionTypes {
		codec, err := compress.CreateCodec(ct, "variable region")
		if err != nil {
			b.Fatal(err)
		}

		for _, numCells := range benchCodecSizes {
			payload := benchVariableRegion(numCells)
			compressed, err := codec.Compress(payload)
			if err != nil {
				b.Fatal(err)
			}

			b.Run(fmt.Sprintf("%s/%dcells", ct, numCells), func(b *testing.B) {
				b.SetBytes(int64(len(payload)))
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					if _, err := codec.Decompress(compressed); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

var benchSchema = schema.Schema{
	{Name: "payload", Type: schema.Bytes},
}

func benchRows(numRows int) [][]any {
	rows := make([][]any, numRows)
	for i := range rows {
		rows[i] = []any{[]byte(fmt.Sprintf("row-%08d-shard:us-east-1-tier:gold-status:active", i))}
	}

	return rows
}

// BenchmarkBlock_BuildFromRows_WithCompression measures the end-to-end cost
// a builder pays for each codec choice, not just the codec in isolation.
func BenchmarkBlock_BuildFromRows_WithCompression(b *testing.B) {
	rows := benchRows(2000)

	for _, ct := range allCompressionTypes {
		b.Run(ct.String(), func(b *testing.B) {
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				if _, err := block.BuildFromRows(benchSchema, rows, block.WithVariableCompression(ct)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
