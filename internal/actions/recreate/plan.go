package recreate

import "strings"

// buildPlan flattens merge records into the ordered list of branch names to
// replay, applying the exclusion set. Discovery order is preserved: it is the
// commit-graph topological order of the original merges and determines the
// commit order of the rebuilt branch. A branch that was merged twice stays in
// the plan twice.
func buildPlan(records []MergeRecord, exclude []string) []string {
	excluded := make(map[string]struct{}, len(exclude))
	for _, name := range exclude {
		excluded[name] = struct{}{}
	}

	var plan []string
	for _, record := range records {
		for _, name := range record.Branches {
			if _, skip := excluded[stripRemotePrefix(name)]; skip {
				continue
			}
			plan = append(plan, name)
		}
	}
	return plan
}

// stripRemotePrefix reduces a remote-qualified name to its branch name so
// exclusions are remote-agnostic: excluding "feature-x" also drops
// "origin/feature-x" and "remotes/origin/feature-x".
func stripRemotePrefix(name string) string {
	name = strings.TrimPrefix(name, "remotes/")
	if i := strings.Index(name, "/"); i >= 0 {
		return name[i+1:]
	}
	return name
}
