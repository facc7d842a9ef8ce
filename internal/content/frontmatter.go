package content

import (
	"bytes"
	"errors"

	"gopkg.in/yaml.v3"
)

// ErrMissingClosingDelimiter indicates a frontmatter block that is opened but never closed.
var ErrMissingClosingDelimiter = errors.New("frontmatter: missing closing delimiter")

// splitFrontmatter separates a leading `---` YAML block from the markdown body.
// had is false when the document carries no frontmatter.
func splitFrontmatter(content []byte) (fm []byte, body []byte, had bool, err error) {
	nl := []byte("\n")
	if bytes.HasPrefix(content, []byte("---\r\n")) {
		nl = []byte("\r\n")
	}
	open := append([]byte("---"), nl...)
	if !bytes.HasPrefix(content, open) {
		return nil, content, false, nil
	}

	rest := content[len(open):]
	if bytes.HasPrefix(rest, open) {
		return []byte{}, rest[len(open):], true, nil
	}

	closeSeq := append(append(append([]byte{}, nl...), "---"...), nl...)
	idx := bytes.Index(rest, closeSeq)
	if idx < 0 {
		// A closing delimiter at EOF without trailing newline.
		closeEOF := append(append([]byte{}, nl...), "---"...)
		if bytes.HasSuffix(rest, closeEOF) {
			return rest[:len(rest)-len(closeEOF)+len(nl)], []byte{}, true, nil
		}
		return nil, nil, false, ErrMissingClosingDelimiter
	}
	return rest[:idx+len(nl)], rest[idx+len(closeSeq):], true, nil
}

// parseFrontmatter decodes a raw YAML block into a field map.
func parseFrontmatter(fm []byte) (map[string]any, error) {
	fields := map[string]any{}
	if len(bytes.TrimSpace(fm)) == 0 {
		return fields, nil
	}
	if err := yaml.Unmarshal(fm, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}
