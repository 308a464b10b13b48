package estest_test

import (
	"context"
	"fmt"
	"time"

	"github.com/skukx/elasticsearch/estest"
	"github.com/skukx/elasticsearch/estest/check"
	"github.com/skukx/elasticsearch/estest/version"
)

// ExampleRetry waits for an asynchronous condition instead of sleeping a
// fixed interval.
func ExampleRetry() {
	started := 0

	err := estest.Retry(context.Background(), func() error {
		started++
		return check.That(started >= 3, "shards still initializing", "started", started)
	}, estest.Within(2*time.Second))

	fmt.Println(err, started)
	// Output: <nil> 3
}

// Example_randomVersionBetween samples a compatibility version from an
// inclusive range, reproducibly under a fixed seed.
func Example_randomVersionBetween() {
	catalog, err := version.NewCatalog(version.Static(
		version.FromID(1_000_000),
		version.FromID(1_010_000),
		version.FromID(2_000_000),
	))
	if err != nil {
		panic(err)
	}

	oldest := version.FromID(1_000_000)
	newest := version.FromID(1_010_000)

	v, err := catalog.RandomBetween(estest.NewSeeded(7), &oldest, &newest)
	if err != nil {
		panic(err)
	}

	fmt.Println(v.Before(version.FromID(2_000_000)))
	// Output: true
}
