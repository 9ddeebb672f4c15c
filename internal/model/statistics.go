package model

// GroupStatistic is the per-group sample fed into assignment statistics.
// Only groups whose latest submission compiled belong here; that filtering is
// the caller's job.
type GroupStatistic struct {
	GroupID     string `yaml:"group"`
	PassedTests int    `yaml:"passed_tests"`
	Submissions int    `yaml:"submissions"`
}

// AssignmentStatistics holds the cohort-wide aggregate over passed-test
// counts.
type AssignmentStatistics struct {
	Average float64 `yaml:"average"`
	// StdDev is the population standard deviation, not the sample one.
	StdDev float64 `yaml:"std_dev"`
	Count  int     `yaml:"count"`
}

// FailureCluster groups submission groups that failed exactly the same set of
// tests. Clusters are only emitted for two or more members.
type FailureCluster struct {
	Groups      []string `yaml:"groups"`
	FailedTests []string `yaml:"failed_tests"`
}
