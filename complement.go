package atactk

import "fmt"

// nucleotideComplements maps each recognized base to its complement. A
// zero entry means the byte is not a nucleotide we accept.
var nucleotideComplements [256]byte

func init() {
	for _, bases := range [][2]byte{
		{'A', 'T'}, {'C', 'G'}, {'G', 'C'}, {'T', 'A'}, {'N', 'N'},
		{'a', 't'}, {'c', 'g'}, {'g', 'c'}, {'t', 'a'}, {'n', 'n'},
	} {
		nucleotideComplements[bases[0]] = bases[1]
	}
}

// Complement returns the complement of the supplied nucleic sequence.
// Nucleic of course implies that the only recognized bases are A, C, G, T
// and N. Case is preserved.
func Complement(seq string) (string, error) {
	out := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		c := nucleotideComplements[seq[i]]
		if c == 0 {
			return "", fmt.Errorf("complement: unrecognized nucleotide %q at position %d", seq[i], i)
		}
		out[i] = c
	}
	return string(out), nil
}

// ReverseComplement returns the complement of the supplied nucleic
// sequence, read in reverse order.
func ReverseComplement(seq string) (string, error) {
	comp, err := Complement(seq)
	if err != nil {
		return "", err
	}
	b := []byte(comp)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b), nil
}
