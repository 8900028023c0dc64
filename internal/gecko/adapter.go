package gecko

import "strings"

// Adapter supplies the per-organism collaborators the rebuild needs: the
// transform from model gene identifiers to protein database keys and the base
// storage path used by the I/O layer. Passed explicitly in Options; there is
// no process-wide default instance.
type Adapter struct {
	// KeyFunc maps a gene identifier to its database key; nil means identity
	KeyFunc func(gene string) string

	// BasePath is where the organism's model and database files live
	BasePath string
}

// key applies the gene-to-key transform
func (a Adapter) key(gene string) string {
	if a.KeyFunc == nil {
		return gene
	}
	return a.KeyFunc(gene)
}

// TrimSuffixKey returns a key transform that drops everything from the first
// occurrence of sep, covering the common transcript-suffix case
// ("G1.1" -> "G1" for sep ".").
func TrimSuffixKey(sep string) func(string) string {
	return func(gene string) string {
		if i := strings.Index(gene, sep); i >= 0 {
			return gene[:i]
		}
		return gene
	}
}
