package mapping

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.viam.com/test"

	"go.viam.com/beaconmap/testutils"
)

func TestBuildMetrics(t *testing.T) {
	scanners := testutils.ExampleScanners(t)
	aligned := testutil.ToFloat64(candidatePairsTotal.WithLabelValues(resultAligned))
	rejected := testutil.ToFloat64(candidatePairsTotal.WithLabelValues(resultRejected))
	unplaced := testutil.ToFloat64(unplacedScannersTotal)

	_, err := Build(context.Background(), scanners)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, testutil.ToFloat64(candidatePairsTotal.WithLabelValues(resultAligned))-aligned, test.ShouldEqual, 4)
	test.That(t, testutil.ToFloat64(candidatePairsTotal.WithLabelValues(resultRejected))-rejected, test.ShouldEqual, 0)

	_, err = Build(context.Background(), scanners[:3])
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, testutil.ToFloat64(unplacedScannersTotal)-unplaced, test.ShouldEqual, 1)
	test.That(t, testutil.CollectAndCount(buildDuration), test.ShouldEqual, 1)
}
