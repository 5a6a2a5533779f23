package tests

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/nlimpid/fastscan/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ScanIntegrationSuite struct {
	suite.Suite

	ints   []int64
	floats []float64
	words  []string
	input  string
}

func (s *ScanIntegrationSuite) SetupSuite() {
	rng := rand.New(rand.NewSource(1))
	var sb strings.Builder
	for i := 0; i < 10000; i++ {
		n := rng.Int63() - math.MaxInt64/2
		f := (rng.Float64() - 0.5) * 1e6
		w := fmt.Sprintf("w%08x", rng.Uint32())
		s.ints = append(s.ints, n)
		s.floats = append(s.floats, f)
		s.words = append(s.words, w)
		fmt.Fprintf(&sb, "%d %.8f %s\n", n, f, w)
	}
	s.input = sb.String()
}

func Test_ScanIntegrationSuite(t *testing.T) {
	suite.Run(t, new(ScanIntegrationSuite))
}

func (s *ScanIntegrationSuite) TestBulkRecordScan() {
	sc := scanner.New(strings.NewReader(s.input))

	start := time.Now()
	var n int64
	var f float64
	var w string
	for i := range s.ints {
		count, err := sc.Scanf("%lld %lf %s", &n, &f, &w)
		require.NoError(s.T(), err)
		require.Equal(s.T(), 3, count)
		assert.Equal(s.T(), s.ints[i], n)
		assert.InDelta(s.T(), s.floats[i], f, math.Abs(s.floats[i])*1e-6+1e-8)
		assert.Equal(s.T(), s.words[i], w)
	}

	_, err := sc.Scanf("%lld", &n)
	assert.ErrorIs(s.T(), err, io.EOF)
	slog.Info("bulk scan done", "records", len(s.ints), "took", time.Since(start))
}

// The same dataset must parse identically through a deliberately tiny
// buffer, which forces a refill inside nearly every token.
func (s *ScanIntegrationSuite) TestBulkScanSurvivesTinyBuffer() {
	sc := scanner.New(strings.NewReader(s.input), scanner.WithBufferSize(5))

	var n int64
	var f float64
	var w string
	for i := 0; i < 200; i++ {
		count, err := sc.Scanf("%lld %lf %s", &n, &f, &w)
		require.NoError(s.T(), err)
		require.Equal(s.T(), 3, count)
		require.Equal(s.T(), s.ints[i], n)
		require.Equal(s.T(), s.words[i], w)
	}
}

func (s *ScanIntegrationSuite) TestSessionReuse() {
	sc := scanner.New(strings.NewReader("1 2 3"), scanner.WithBufferSize(1<<10))

	var a, b, c int32
	count, err := sc.Scanf("%d %d %d", &a, &b, &c)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 3, count)

	// A fresh session on the same Scanner reuses the buffer and clears the
	// exhaustion state from the previous source.
	_, err = sc.Scanf("%d", &a)
	assert.ErrorIs(s.T(), err, io.EOF)

	sc.Reset(strings.NewReader("7 8"))
	count, err = sc.Scanf("%d %d", &a, &b)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 2, count)
	assert.Equal(s.T(), int32(7), a)
	assert.Equal(s.T(), int32(8), b)
}

// Independent scanners over independent sources never interfere.
func (s *ScanIntegrationSuite) TestIndependentSessions() {
	first := scanner.New(strings.NewReader("1 3 5"))
	second := scanner.New(strings.NewReader("2 4 6"))

	var got []int32
	for i := 0; i < 3; i++ {
		var v int32
		_, err := first.Scanf("%d", &v)
		require.NoError(s.T(), err)
		got = append(got, v)
		_, err = second.Scanf("%d", &v)
		require.NoError(s.T(), err)
		got = append(got, v)
	}
	assert.Equal(s.T(), []int32{1, 2, 3, 4, 5, 6}, got)
}

func (s *ScanIntegrationSuite) TestLineAndTokenMix() {
	in := "header line one\n  12 alpha\n  34 beta\n"
	sc := scanner.New(strings.NewReader(in))

	header, err := sc.ReadLineString()
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "header line one", header)

	type row struct {
		id   int32
		name string
	}
	var rows []row
	for {
		var r row
		count, err := sc.Scanf("%d %s", &r.id, &r.name)
		if count == 0 {
			assert.ErrorIs(s.T(), err, io.EOF)
			break
		}
		require.NoError(s.T(), err)
		rows = append(rows, r)
	}
	assert.Equal(s.T(), []row{{12, "alpha"}, {34, "beta"}}, rows)
}

func BenchmarkBulkRecordScan(b *testing.B) {
	s := new(ScanIntegrationSuite)
	s.SetT(&testing.T{})
	s.SetupSuite()
	sc := scanner.New(strings.NewReader(s.input))

	var n int64
	var f float64
	var w string
	b.SetBytes(int64(len(s.input)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sc.Reset(strings.NewReader(s.input))
		for {
			if _, err := sc.Scanf("%lld %lf %s", &n, &f, &w); err != nil {
				break
			}
		}
	}
}
