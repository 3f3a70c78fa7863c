package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"

	"github.com/dostoys/seth/internal/errors"

	"al.essio.dev/pkg/shellescape"
	"github.com/goccy/go-yaml"
)

type variable struct {
	Name  string
	Value string
}

var shellIdentifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func (s Service) writeJSON(w io.Writer, vars []variable) error {
	m := make(map[string]string, len(vars))
	for _, v := range vars {
		m[v.Name] = v.Value
	}

	encoded, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return errors.Wrap(err, "unable to JSON encode the variables")
	}

	_, err = fmt.Fprintln(w, string(encoded))
	return err
}

func (s Service) writeYAML(w io.Writer, vars []variable) error {
	items := make(yaml.MapSlice, 0, len(vars))
	for _, v := range vars {
		items = append(items, yaml.MapItem{Key: v.Name, Value: v.Value})
	}

	encoded, err := yaml.Marshal(items)
	if err != nil {
		return errors.Wrap(err, "unable to YAML encode the variables")
	}

	_, err = w.Write(encoded)
	return err
}

// writeShell writes one export statement per variable. Names that are not
// valid shell identifiers cannot be exported and are skipped.
func (s Service) writeShell(w io.Writer, vars []variable) error {
	for _, v := range vars {
		if !shellIdentifier.MatchString(v.Name) {
			s.Logger.Debugw("skipping variable that is not a shell identifier", "name", v.Name)
			continue
		}

		if _, err := fmt.Fprintf(w, "export %s=%s\n", v.Name, shellescape.Quote(v.Value)); err != nil {
			return err
		}
	}

	return nil
}
