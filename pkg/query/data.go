package query

// arraySuffix marks a key that carries several values, as in "tag[]=a&tag[]=b".
const arraySuffix = "[]"

// Pair is one decoded key/value entry of a query string.
type Pair struct {
	Key   string
	Value string
}
