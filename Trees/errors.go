package Trees

// CorruptError reports a structural invariant violation found by one of the
// validators. Rule names the violated rule: "adjacency", "order", "height",
// "balance" or "color".
type CorruptError struct {
	Rule   string
	Detail string
}

func (e CorruptError) Error() string {
	return "corrupt tree: " + e.Rule + ": " + e.Detail
}
