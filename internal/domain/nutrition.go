package domain

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// NutritionDocument é o conteúdo de more-data.json: "YYYY-MM-DD" -> avaliação
type NutritionDocument map[string]NutritionEntry

// NutritionEntry é a avaliação nutricional de um dia. O arquivo publicado usa
// os nomes "analisi" e "consiglio"; "analysis" e "advice" também são aceitos.
type NutritionEntry struct {
	Analysis string `json:"analysis,omitempty"`
	Advice   string `json:"advice,omitempty"`
}

func (n *NutritionEntry) UnmarshalJSON(data []byte) error {
	var raw struct {
		Analysis  string `json:"analysis"`
		Advice    string `json:"advice"`
		Analisi   string `json:"analisi"`
		Consiglio string `json:"consiglio"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	n.Analysis = raw.Analysis
	if n.Analysis == "" {
		n.Analysis = raw.Analisi
	}
	n.Advice = raw.Advice
	if n.Advice == "" {
		n.Advice = raw.Consiglio
	}

	return nil
}

func (n NutritionEntry) IsEmpty() bool {
	return n.Analysis == "" && n.Advice == ""
}

// Lookup devolve a avaliação do dia, se houver alguma com conteúdo
func (d NutritionDocument) Lookup(dayKey string) (NutritionEntry, bool) {
	entry, ok := d[dayKey]
	if !ok || entry.IsEmpty() {
		return NutritionEntry{}, false
	}
	return entry, true
}
