package survey

// CreatesCycle reports whether adding the dependency edge
// questionID -> conditionQuestionID would make questionID reachable from
// itself. deps holds the existing edges: question id -> ids of the questions
// its visibility already depends on. Used to reject cyclic conditionals at
// creation time; evaluation itself never walks the graph.
func CreatesCycle(deps map[string][]string, questionID, conditionQuestionID string) bool {
	if questionID == conditionQuestionID {
		return true
	}

	seen := make(map[string]bool)
	var walk func(id string) bool
	walk = func(id string) bool {
		if id == questionID {
			return true
		}
		if seen[id] {
			return false
		}
		seen[id] = true
		for _, next := range deps[id] {
			if walk(next) {
				return true
			}
		}
		return false
	}
	return walk(conditionQuestionID)
}
