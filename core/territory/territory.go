/*
Package territory maps RISC OS territory numbers and alphabet names onto
their Go counterparts.

Territory-local names appear in font qualifier strings (qualifiers 'f'
and 'e'), keyed by the numeric territory of the Territory module. Clients
which want to hand such names over to locale-aware machinery need BCP 47
language tags instead, and clients decoding text in one of the RISC OS
alphabets need a character mapping.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package territory

import (
	"github.com/npillmayer/fontq/core"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/language"
)

// tracer writes to trace with key 'fontq.territory'
func tracer() tracing.Trace {
	return tracing.Select("fontq.territory")
}

// Territory numbers as allocated to the Territory module. The list is not
// exhaustive; unlisted numbers resolve to language.Und.
const (
	UK       = 1
	Italy    = 4
	Spain    = 5
	France   = 6
	Germany  = 7
	Portugal = 8
	Greece   = 10
	Sweden   = 11
	Finland  = 12
	Denmark  = 14
	Norway   = 15
	Iceland  = 16
	Canada   = 19
	Turkey   = 21
	Ireland  = 24
	Russia   = 26
	Israel   = 28
	Mexico   = 31
	Japan    = 41
	USA      = 48
)

var languages = map[int]language.Tag{
	UK:       language.MustParse("en-GB"),
	Italy:    language.MustParse("it-IT"),
	Spain:    language.MustParse("es-ES"),
	France:   language.MustParse("fr-FR"),
	Germany:  language.MustParse("de-DE"),
	Portugal: language.MustParse("pt-PT"),
	Greece:   language.MustParse("el-GR"),
	Sweden:   language.MustParse("sv-SE"),
	Finland:  language.MustParse("fi-FI"),
	Denmark:  language.MustParse("da-DK"),
	Norway:   language.MustParse("nb-NO"),
	Iceland:  language.MustParse("is-IS"),
	Canada:   language.MustParse("en-CA"),
	Turkey:   language.MustParse("tr-TR"),
	Ireland:  language.MustParse("en-IE"),
	Russia:   language.MustParse("ru-RU"),
	Israel:   language.MustParse("he-IL"),
	Mexico:   language.MustParse("es-MX"),
	Japan:    language.MustParse("ja-JP"),
	USA:      language.MustParse("en-US"),
}

// Language returns the BCP 47 language tag for a territory number.
// Unknown territories yield language.Und together with an EMISSING error.
func Language(territory int) (language.Tag, error) {
	if tag, ok := languages[territory]; ok {
		return tag, nil
	}
	tracer().Infof("no language known for territory %d", territory)
	return language.Und, core.Error(core.EMISSING, "unknown territory number %d", territory)
}
