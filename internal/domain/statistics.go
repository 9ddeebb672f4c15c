package domain

import (
	"math"
	"sort"
	"strings"

	m "grademill.dev/pkg/grademill/internal/model"
)

// ClusterByFailures groups submission groups by identical failure
// fingerprints. Each group's failed test names are sorted into a canonical
// comma-joined key; one cluster is emitted per key shared by at least two
// groups. Singleton profiles are suppressed: the signal of interest is groups
// of groups failing exactly the same tests, not isolated failures. Cluster
// order and the test-name order within a cluster follow the canonical sorted
// key, not arrival order.
func ClusterByFailures(failuresByGroup map[string][]string) []m.FailureCluster {
	membersByKey := make(map[string][]string)

	for group, failures := range failuresByGroup {
		if len(failures) == 0 {
			continue
		}

		names := append([]string(nil), failures...)
		sort.Strings(names)

		key := strings.Join(names, ",")
		membersByKey[key] = append(membersByKey[key], group)
	}

	keys := make([]string, 0, len(membersByKey))
	for key := range membersByKey {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	clusters := make([]m.FailureCluster, 0)

	for _, key := range keys {
		members := membersByKey[key]
		if len(members) < 2 {
			continue
		}

		sort.Strings(members)

		clusters = append(clusters, m.FailureCluster{
			Groups:      members,
			FailedTests: strings.Split(key, ","),
		})
	}

	return clusters
}

// ComputeStatistics returns mean and population standard deviation over the
// passed-test counts of the given samples. Filtering on "latest submission
// compiled" is the caller's responsibility and not re-validated here.
func ComputeStatistics(samples []m.GroupStatistic) m.AssignmentStatistics {
	if len(samples) == 0 {
		return m.AssignmentStatistics{}
	}

	sum := 0.0
	for _, sample := range samples {
		sum += float64(sample.PassedTests)
	}

	average := sum / float64(len(samples))

	variance := 0.0
	for _, sample := range samples {
		delta := float64(sample.PassedTests) - average
		variance += delta * delta
	}

	variance /= float64(len(samples))

	return m.AssignmentStatistics{
		Average: average,
		StdDev:  math.Sqrt(variance),
		Count:   len(samples),
	}
}

// IdentifyOutliers flags groups whose passed-test count falls at or below
// one standard deviation under the cohort average. A one-sided threshold is
// intentionally conservative and cheap enough to recompute on every
// assignment view.
func IdentifyOutliers(stats m.AssignmentStatistics, samples []m.GroupStatistic) map[string]struct{} {
	outliers := make(map[string]struct{})

	if stats.Count == 0 {
		return outliers
	}

	threshold := stats.Average - stats.StdDev

	for _, sample := range samples {
		if float64(sample.PassedTests) <= threshold {
			outliers[sample.GroupID] = struct{}{}
		}
	}

	return outliers
}
