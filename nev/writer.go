package nev

// Writer adapts a byte Vec into the io writer interfaces, appending every
// write to the vector. Writes into memory cannot fail, so the error results
// exist only to satisfy the interfaces.
//
// This lets a non-empty byte vector sit at the end of an io pipeline
// (fmt.Fprintf, io.Copy, template execution) with the non-emptiness
// guarantee riding along:
//
//	buf := nev.New[byte]('#')
//	fmt.Fprintf(nev.NewWriter(buf), " %d issues", 3)
type Writer struct {
	v *Vec[byte]
}

// NewWriter returns a Writer that appends to v.
func NewWriter(v *Vec[byte]) *Writer {
	return &Writer{v: v}
}

// Write appends p to the vector. It implements io.Writer; n is always
// len(p) and the error is always nil.
func (w *Writer) Write(p []byte) (int, error) {
	w.v.items = append(w.v.items, p...)
	return len(p), nil
}

// WriteString appends s to the vector. It implements io.StringWriter.
func (w *Writer) WriteString(s string) (int, error) {
	w.v.items = append(w.v.items, s...)
	return len(s), nil
}

// WriteByte appends c to the vector. It implements io.ByteWriter.
func (w *Writer) WriteByte(c byte) error {
	w.v.items = append(w.v.items, c)
	return nil
}

// Vec returns the vector being appended to.
func (w *Writer) Vec() *Vec[byte] { return w.v }
