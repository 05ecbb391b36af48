// Package vocabulary provides the immutable reference data shared by the tokenizer,
// keyword extractor and match scorer: stop words, known skills and their aliases.
// The default vocabulary is embedded at compile time and parsed once.
package vocabulary

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed vocabulary.yaml
var defaultData []byte

var (
	defaultOnce  sync.Once
	defaultVocab *Vocabulary
	defaultErr   error
)

// file mirrors the YAML layout of a vocabulary document.
type file struct {
	StopWords []string    `yaml:"stop_words"`
	Skills    []skillSpec `yaml:"skills"`
}

type skillSpec struct {
	Name    string   `yaml:"name"`
	Aliases []string `yaml:"aliases"`
}

// Vocabulary is read-only after construction and safe for concurrent use.
type Vocabulary struct {
	stopWords map[string]struct{}
	skills    map[string]struct{}
	// aliases maps every alias to its canonical skill name
	aliases map[string]string
}

// Default returns the embedded vocabulary. It panics if the embedded document is
// malformed, which can only happen at build time.
func Default() *Vocabulary {
	defaultOnce.Do(func() {
		defaultVocab, defaultErr = Parse(defaultData)
	})
	if defaultErr != nil {
		panic(fmt.Sprintf("failed to load embedded vocabulary: %v", defaultErr))
	}
	return defaultVocab
}

// LoadFile reads a vocabulary document from disk.
func LoadFile(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}
	return Parse(data)
}

// Parse builds a Vocabulary from a YAML document. Entries are lower-cased and
// trimmed. An alias that points at two different skills, or that shadows another
// skill name, is rejected.
func Parse(data []byte) (*Vocabulary, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, &LoadError{Message: "failed to parse YAML", Cause: err}
	}

	v := &Vocabulary{
		stopWords: make(map[string]struct{}, len(f.StopWords)),
		skills:    make(map[string]struct{}, len(f.Skills)),
		aliases:   make(map[string]string),
	}

	for _, w := range f.StopWords {
		w = clean(w)
		if w == "" {
			continue
		}
		v.stopWords[w] = struct{}{}
	}

	for _, s := range f.Skills {
		name := clean(s.Name)
		if name == "" {
			return nil, &LoadError{Message: "skill with empty name"}
		}
		if _, dup := v.skills[name]; dup {
			return nil, &LoadError{Message: fmt.Sprintf("duplicate skill %q", name)}
		}
		if _, stop := v.stopWords[name]; stop {
			return nil, &LoadError{Message: fmt.Sprintf("skill %q is also a stop word", name)}
		}
		v.skills[name] = struct{}{}
	}

	for _, s := range f.Skills {
		name := clean(s.Name)
		for _, a := range s.Aliases {
			a = clean(a)
			if a == "" || a == name {
				continue
			}
			if _, isSkill := v.skills[a]; isSkill {
				return nil, &LoadError{Message: fmt.Sprintf("alias %q of %q shadows a skill", a, name)}
			}
			if prev, ok := v.aliases[a]; ok && prev != name {
				return nil, &LoadError{Message: fmt.Sprintf("alias %q maps to both %q and %q", a, prev, name)}
			}
			v.aliases[a] = name
		}
	}

	return v, nil
}

// Canonical resolves an alias to its skill name. Terms that are not aliases are
// returned unchanged.
func (v *Vocabulary) Canonical(term string) string {
	if canonical, ok := v.aliases[term]; ok {
		return canonical
	}
	return term
}

// IsSkill reports whether term, after alias resolution, is a known skill.
func (v *Vocabulary) IsSkill(term string) bool {
	_, ok := v.skills[v.Canonical(term)]
	return ok
}

// IsStopWord reports whether term is in the stop-word list.
func (v *Vocabulary) IsStopWord(term string) bool {
	_, ok := v.stopWords[term]
	return ok
}

// Known reports whether term is a skill name or an alias, without resolution.
func (v *Vocabulary) Known(term string) bool {
	if _, ok := v.skills[term]; ok {
		return true
	}
	_, ok := v.aliases[term]
	return ok
}

// Skills returns the canonical skill names in sorted order.
func (v *Vocabulary) Skills() []string {
	out := make([]string, 0, len(v.skills))
	for s := range v.skills {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Aliases returns the aliases of a canonical skill in sorted order.
func (v *Vocabulary) Aliases(skill string) []string {
	var out []string
	for a, canonical := range v.aliases {
		if canonical == skill {
			out = append(out, a)
		}
	}
	sort.Strings(out)
	return out
}

// StopWordCount returns the number of stop words.
func (v *Vocabulary) StopWordCount() int {
	return len(v.stopWords)
}

func clean(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
