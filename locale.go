package polar

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

const (
	msgNoData   = "No data"
	msgPlotType = "Polar Plot"
)

var translations = map[language.Tag]map[string]string{
	language.French: {
		msgNoData:   "Aucune donnée",
		msgPlotType: "Graphique polaire",
	},
	language.German: {
		msgNoData:   "Keine Daten",
		msgPlotType: "Polardiagramm",
	},
	language.Spanish: {
		msgNoData:   "Sin datos",
		msgPlotType: "Gráfico polar",
	},
	language.Italian: {
		msgNoData:   "Nessun dato",
		msgPlotType: "Grafico polare",
	},
}

var messages = buildCatalog()

func buildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for _, key := range []string{msgNoData, msgPlotType} {
		b.SetString(language.English, key, key)
	}
	for tag, list := range translations {
		for key, msg := range list {
			b.SetString(tag, key, msg)
		}
	}
	return b
}

// Languages lists the languages for which plot messages are translated.
func Languages() []language.Tag {
	return messages.Languages()
}

func newPrinter(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(messages))
}
