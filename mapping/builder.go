package mapping

import (
	"context"
	"time"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"go.viam.com/beaconmap/logging"
	"go.viam.com/beaconmap/referenceframe"
	"go.viam.com/beaconmap/registration"
	"go.viam.com/beaconmap/utils"
)

type builder struct {
	config Config
	logger logging.Logger
}

type pairResult struct {
	alignment registration.Alignment
	ok        bool
}

// Build places every scanner in the frame of the reference scanner and collects the distinct
// scanner and beacon positions. scanners[i] holds the beacons seen by scanner i in its own frame.
//
// Candidate pairs are aligned concurrently; the transform graph is assembled in candidate order so
// the result does not depend on scheduling. When some scanners cannot be connected to the reference,
// the map of the connected ones is returned together with an *IncompleteError.
func Build(ctx context.Context, scanners [][]r3.Vector, opts ...Option) (*Map, error) {
	b := &builder{
		config: DefaultConfig(),
		logger: logging.NewBlankLogger("mapping"),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b.build(ctx, scanners)
}

func (b *builder) build(ctx context.Context, scanners [][]r3.Vector) (*Map, error) {
	if len(scanners) == 0 {
		return nil, ErrNoScanners
	}
	if err := b.config.Validate("mapping"); err != nil {
		return nil, err
	}
	if b.config.Reference >= len(scanners) {
		return nil, utils.NewConfigValidationError("mapping", errors.Errorf(
			"%q is %d but there are only %d scanners", "reference", b.config.Reference, len(scanners)))
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	defer func() {
		buildDuration.Observe(time.Since(start).Seconds())
	}()

	fingerprints := lo.Map(scanners, func(beacons []r3.Vector, _ int) *registration.Fingerprint {
		return registration.NewFingerprint(beacons)
	})
	candidates := registration.FindCandidatePairs(fingerprints, b.config.sharedDistances())
	b.logger.Debugw("found candidate pairs",
		"scanners", len(scanners), "candidates", len(candidates), "min_shared_distances", b.config.sharedDistances())

	results, err := b.alignCandidates(ctx, scanners, candidates)
	if err != nil {
		return nil, err
	}

	tg := referenceframe.NewTransformGraph()
	for id := range scanners {
		tg.AddNode(id)
	}
	for i, c := range candidates {
		r := results[i]
		if !r.ok {
			candidatePairsTotal.WithLabelValues(resultRejected).Inc()
			b.logger.Debugw("rejected candidate pair",
				"a", c.A, "b", c.B,
				"shared_distances", c.Shared.GetCardinality(),
				"correspondences", len(r.alignment.Correspondences),
				"residual", r.alignment.Residual.String())
			continue
		}
		candidatePairsTotal.WithLabelValues(resultAligned).Inc()
		alignmentRMSE.Observe(r.alignment.Residual.RMSE)
		b.logger.Debugw("aligned scanners",
			"a", c.A, "b", c.B,
			"correspondences", len(r.alignment.Correspondences),
			"translation", r.alignment.Pose.Point(),
			"residual", r.alignment.Residual.String())
		if err := tg.AddTransform(c.A, c.B, r.alignment.Pose); err != nil {
			return nil, err
		}
	}

	world, err := tg.WorldTransforms(b.config.Reference)
	if err != nil {
		return nil, err
	}
	m := newMap(scanners, world)

	missing := lo.Filter(tg.Nodes(), func(id, _ int) bool {
		_, placed := world[id]
		return !placed
	})
	if len(missing) > 0 {
		unplacedScannersTotal.Add(float64(len(missing)))
		b.logger.Warnw("some scanners could not be placed",
			"reference", b.config.Reference, "missing", missing, "placed", len(world))
		return m, &IncompleteError{Missing: missing}
	}
	b.logger.Infow("built map",
		"scanners", m.Scanners.Len(), "beacons", m.BeaconCount(), "edges", tg.EdgeCount()/2)
	return m, nil
}

// alignCandidates aligns every candidate pair, at most Config.Parallelism at a time. results[i]
// belongs to candidates[i].
func (b *builder) alignCandidates(
	ctx context.Context,
	scanners [][]r3.Vector,
	candidates []registration.CandidatePair,
) ([]pairResult, error) {
	opts := b.config.alignOptions()
	results := make([]pairResult, len(candidates))
	err := utils.ParallelForEach(ctx, len(candidates), b.config.Parallelism, func(ctx context.Context, i int) error {
		c := candidates[i]
		alignment, ok, err := registration.AlignPair(scanners[c.A], scanners[c.B], opts)
		if err != nil {
			return errors.Wrapf(err, "aligning scanners %d and %d", c.A, c.B)
		}
		results[i] = pairResult{alignment: alignment, ok: ok}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}
