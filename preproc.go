package sampleframe

import (
	"context"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/hupe1980/sampleframe/meta"
)

// The chunk-grouped filters below mutate the data matrix in place, one
// chunk group at a time, and never touch metadata or descriptors. Chunk
// groups are row-disjoint, so they are processed in parallel; running two
// filters concurrently on the same Dataset, or reading the matrix while a
// filter runs, is not safe.
//
// The filters are not atomic across chunk groups: a failure partway
// through leaves earlier groups already mutated and later ones untouched.

// DetrendByChunks removes the least-squares linear trend from every feature
// within each chunk group.
func (d *Dataset) DetrendByChunks(ctx context.Context) error {
	return d.applyByChunks(ctx, "detrend", func(rows []int) {
		_, nf := d.data.Dims()
		xs := make([]float64, len(rows))
		for i := range xs {
			xs[i] = float64(i)
		}
		ys := make([]float64, len(rows))

		for j := 0; j < nf; j++ {
			for i, r := range rows {
				ys[i] = d.data.At(r, j)
			}
			if len(rows) < 2 {
				// A single sample carries no trend beyond its own value.
				for _, r := range rows {
					d.data.Set(r, j, 0)
				}
				continue
			}
			alpha, beta := stat.LinearRegression(xs, ys, nil, false)
			for i, r := range rows {
				d.data.Set(r, j, ys[i]-(alpha+beta*xs[i]))
			}
		}
	})
}

// ZScoreByChunks centers every feature within each chunk group and scales
// it to unit standard deviation. Features with zero deviation are centered
// only.
func (d *Dataset) ZScoreByChunks(ctx context.Context) error {
	return d.applyByChunks(ctx, "zscore", func(rows []int) {
		_, nf := d.data.Dims()
		ys := make([]float64, len(rows))

		for j := 0; j < nf; j++ {
			for i, r := range rows {
				ys[i] = d.data.At(r, j)
			}
			mean, std := stat.MeanStdDev(ys, nil)
			if len(rows) < 2 || std == 0 {
				for i, r := range rows {
					d.data.Set(r, j, ys[i]-mean)
				}
				continue
			}
			for i, r := range rows {
				d.data.Set(r, j, (ys[i]-mean)/std)
			}
		}
	})
}

// SmoothByChunks applies a boxcar moving average of the given width to
// every feature within each chunk group, clipping the window at chunk
// boundaries.
func (d *Dataset) SmoothByChunks(ctx context.Context, width int) error {
	if width < 1 {
		return ErrInvalidWidth
	}
	return d.applyByChunks(ctx, "smooth", func(rows []int) {
		_, nf := d.data.Dims()
		ys := make([]float64, len(rows))
		out := make([]float64, len(rows))
		half := width / 2

		for j := 0; j < nf; j++ {
			for i, r := range rows {
				ys[i] = d.data.At(r, j)
			}
			for i := range rows {
				lo := max(i-half, 0)
				hi := min(i-half+width, len(rows))
				out[i] = floats.Sum(ys[lo:hi]) / float64(hi-lo)
			}
			for i, r := range rows {
				d.data.Set(r, j, out[i])
			}
		}
	})
}

// chunkGroups partitions the sample axis by the chunks field, derived from
// its descriptor. With chunks unset, the whole axis is a single group.
func (d *Dataset) chunkGroups() [][]int {
	ns, _ := d.data.Dims()

	desc, ok := d.sampleDesc[meta.FieldChunks]
	if !ok || desc.Count == 0 {
		rows := make([]int, ns)
		for i := range rows {
			rows[i] = i
		}
		return [][]int{rows}
	}

	groups := make([][]int, desc.Count)
	for i, k := range desc.Inverse {
		groups[k] = append(groups[k], i)
	}
	return groups
}

// applyByChunks fans fn out over the chunk groups, one goroutine per group.
// Groups are row-disjoint, so the concurrent mutations never overlap.
func (d *Dataset) applyByChunks(ctx context.Context, op string, fn func(rows []int)) error {
	groups := d.chunkGroups()

	g, ctx := errgroup.WithContext(ctx)
	for _, rows := range groups {
		rows := rows
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			fn(rows)
			return nil
		})
	}

	err := g.Wait()
	d.logger.LogFilter(ctx, op, len(groups), err)
	return err
}
