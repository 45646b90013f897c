// SPDX-License-Identifier: MIT

package render

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Caption keys. The English text doubles as the key.
const (
	msgNoField   = "no field"
	msgWithField = "with field"
	msgPiLight   = "π light"
	msgSigmaLin  = "σ light"
)

// supported lists caption languages; the first entry is the fallback.
var supported = []language.Tag{language.English, language.Chinese}

var (
	captions = newCaptionCatalog()
	matcher  = language.NewMatcher(supported)
)

func newCaptionCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for _, k := range []string{msgNoField, msgWithField, msgPiLight, msgSigmaLin} {
		_ = b.SetString(language.English, k, k)
	}
	_ = b.SetString(language.Chinese, msgNoField, "无磁场")
	_ = b.SetString(language.Chinese, msgWithField, "有磁场")
	_ = b.SetString(language.Chinese, msgPiLight, "π光")
	_ = b.SetString(language.Chinese, msgSigmaLin, "σ光")

	return b
}

// translator renders captions for one locale.
type translator struct {
	p *message.Printer
}

// newTranslator picks the best supported language for locale, e.g.
// "zh-CN" ⇒ Chinese, "fr" ⇒ English.
func newTranslator(locale string) translator {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Und
	}
	_, idx, _ := matcher.Match(tag)

	return translator{p: message.NewPrinter(supported[idx], message.Catalog(captions))}
}

func (t translator) tr(key string) string {
	return t.p.Sprintf(key)
}
