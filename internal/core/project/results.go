package project

// Result is the outcome of loading one path. Exactly one of Project or Err is set.
type Result struct {
	Path    string
	Project Project
	Err     error
}

// OK reports whether the path produced a project.
func (r Result) OK() bool {
	return r.Err == nil
}

// LoadAll loads every path independently. A failing path never stops the others;
// results are returned in input order.
func LoadAll(paths []string, opts Options) []Result {
	results := make([]Result, 0, len(paths))
	for _, path := range paths {
		p, err := Load(path, opts)
		results = append(results, Result{Path: path, Project: p, Err: err})
	}
	return results
}

// Partition splits results into loaded projects and failures, keeping order.
func Partition(results []Result) (projects []Project, failed []Result) {
	for _, r := range results {
		if r.OK() {
			projects = append(projects, r.Project)
		} else {
			failed = append(failed, r)
		}
	}
	return projects, failed
}
