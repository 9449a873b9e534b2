package dashboard

import (
	"strconv"

	"github.com/benjp009/affiliate-tracker/internal/models"
)

// Option пункт выпадающего списка
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// Пикеры пересобираются из текущих кэшей при каждом рендере: выбранное
// ранее значение не переживает перезагрузку кэша, если его не передали
// явно (фильтр ссылок передаёт его через query-параметр).

// PartnerOptions собирает список опций пикера партнёров.
// Первой всегда идёт опция-заглушка с пустым значением.
func PartnerOptions(partners []models.Partner, placeholder, selected string) []Option {
	options := []Option{{Value: "", Label: placeholder, Selected: selected == ""}}
	for _, p := range partners {
		value := strconv.FormatInt(p.ID, 10)
		options = append(options, Option{
			Value:    value,
			Label:    p.Name + " (" + p.Platform + ")",
			Selected: value == selected,
		})
	}
	return options
}

// LinkOptions собирает список опций пикера ссылок для формы транзакции
func LinkOptions(links []models.Link, placeholder, selected string) []Option {
	options := []Option{{Value: "", Label: placeholder, Selected: selected == ""}}
	for _, l := range links {
		value := strconv.FormatInt(l.ID, 10)
		options = append(options, Option{
			Value:    value,
			Label:    l.BrandName + " - " + productLabel(l.ProductName),
			Selected: value == selected,
		})
	}
	return options
}

// StatusOptions собирает список опций фильтра по статусу
func StatusOptions(statuses []string, placeholder, selected string) []Option {
	options := []Option{{Value: "", Label: placeholder, Selected: selected == ""}}
	for _, s := range statuses {
		options = append(options, Option{Value: s, Label: s, Selected: s == selected})
	}
	return options
}

func productLabel(product *string) string {
	if product == nil || *product == "" {
		return "General"
	}
	return *product
}
