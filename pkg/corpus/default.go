package corpus

import (
	_ "embed"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

//go:embed data/words.txt
var embeddedWords string

//go:embed data/common.txt
var embeddedCommon string

var (
	defaultOnce   sync.Once
	defaultCorpus *Corpus
)

// Default returns the corpus built from the embedded word lists. It is built
// on first use and shared afterwards.
func Default() *Corpus {
	defaultOnce.Do(func() {
		words, err := ReadWords(strings.NewReader(embeddedWords))
		if err != nil {
			log.Fatalf("Embedded word list is unreadable: %v", err)
		}
		common, err := ReadWords(strings.NewReader(embeddedCommon))
		if err != nil {
			log.Fatalf("Embedded common word list is unreadable: %v", err)
		}
		defaultCorpus = Build(words, common)
		log.Debugf("Built default corpus: %d words, %d common", defaultCorpus.Len(), defaultCorpus.Stats().CommonWords)
	})
	return defaultCorpus
}
