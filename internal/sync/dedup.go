package sync

// Dedupe collapses items sharing a SKU. The input is in fetch order
// and the first occurrence wins, including its category tag, so a SKU
// listed under two source codes lands in the category fetched first.
func Dedupe(items []Item) []Item {
	seen := make(map[string]struct{}, len(items))
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it.SKU]; ok {
			continue
		}
		seen[it.SKU] = struct{}{}
		out = append(out, it)
	}
	return out
}
