// Package i18n holds the localized console texts: record labels, menu
// entries, prompts and the yes/no vocabulary.
package i18n

import (
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// Catalog is the full set of user-facing texts for one language.
type Catalog struct {
	Tag language.Tag

	// Record rendering.
	TypeLabel      string
	TypeEquipment  string
	TypeTelevision string
	TypeRadio      string
	Brand          string
	Model          string
	Price          string
	Currency       string
	Power          string
	PowerUnit      string
	ScreenSize     string
	Resolution     string
	SmartTV        string
	FrequencyRange string
	Bluetooth      string
	Presets        string
	Yes            string
	No             string
	Separator      string

	// Menu and prompts.
	MenuTitle      string
	MenuAdd        string
	MenuList       string
	MenuRemove     string
	MenuExit       string
	PromptChoice   string
	PromptKind     string
	PromptBrand    string
	PromptModel    string
	PromptPrice    string
	PromptPower    string
	PromptScreen   string
	PromptRes      string
	PromptSmartTV  string
	PromptFreq     string
	PromptBT       string
	PromptPresets  string
	PromptPosition string

	// Feedback.
	EnterValue  string
	EnterNumber string // format: min, max
	EnterYesNo  string
	Added       string
	Removed     string
	ListEmpty   string
	InvalidPos  string
	Released    string // format: count
	Finished    string
	ItemHeader  string // format: position
	ItemSummary string // format: position, summary
	YesWords    []string
	NoWords     []string
}

// FormatBool renders a flag as the localized yes/no token.
func (c *Catalog) FormatBool(v bool) string {
	if v {
		return c.Yes
	}
	return c.No
}

var english = &Catalog{
	Tag: language.English,

	TypeLabel:      "Type",
	TypeEquipment:  "Base audio-video equipment",
	TypeTelevision: "Television",
	TypeRadio:      "Radio Receiver",
	Brand:          "Brand",
	Model:          "Model",
	Price:          "Price",
	Currency:       "rub.",
	Power:          "Power consumption",
	PowerUnit:      "W",
	ScreenSize:     "Screen size",
	Resolution:     "Resolution",
	SmartTV:        "Smart TV",
	FrequencyRange: "Frequency range",
	Bluetooth:      "Bluetooth",
	Presets:        "Presets",
	Yes:            "Yes",
	No:             "No",
	Separator:      "------------------------",

	MenuTitle:      "Menu:",
	MenuAdd:        "1 - Add device",
	MenuList:       "2 - Show list",
	MenuRemove:     "3 - Remove device",
	MenuExit:       "4 - Exit",
	PromptChoice:   "Choice: ",
	PromptKind:     "Type: ",
	PromptBrand:    "Brand: ",
	PromptModel:    "Model: ",
	PromptPrice:    "Price (%d-%d): ",
	PromptPower:    "Power (%d-%d): ",
	PromptScreen:   "Screen size (%g-%g): ",
	PromptRes:      "Resolution: ",
	PromptSmartTV:  "Smart TV (Yes/No): ",
	PromptFreq:     "Range (FM/AM): ",
	PromptBT:       "Bluetooth (Yes/No): ",
	PromptPresets:  "Presets (%d-%d): ",
	PromptPosition: "Number to remove: ",

	EnterValue:  "Enter a value.",
	EnterNumber: "Enter a number from %v to %v.",
	EnterYesNo:  "Enter 1/0 or Yes/No.",
	Added:       "Added.",
	Removed:     "Removed.",
	ListEmpty:   "The list is empty.",
	InvalidPos:  "Invalid position.",
	Released:    "Released %d object(s).",
	Finished:    "Finished.",
	ItemHeader:  "#%d",
	ItemSummary: "#%d: %s",
	YesWords:    []string{"yes"},
	NoWords:     []string{"no"},
}

var russian = &Catalog{
	Tag: language.Russian,

	TypeLabel:      "Тип",
	TypeEquipment:  "Базовое аудио-видео оборудование",
	TypeTelevision: "Телевизор",
	TypeRadio:      "Радиоприемник",
	Brand:          "Бренд",
	Model:          "Модель",
	Price:          "Цена",
	Currency:       "руб.",
	Power:          "Потребляемая мощность",
	PowerUnit:      "Вт",
	ScreenSize:     "Диагональ экрана",
	Resolution:     "Разрешение",
	SmartTV:        "Smart TV",
	FrequencyRange: "Диапазон частот",
	Bluetooth:      "Bluetooth",
	Presets:        "Количество пресетов",
	Yes:            "Да",
	No:             "Нет",
	Separator:      "------------------------",

	MenuTitle:      "Меню:",
	MenuAdd:        "1 - Добавить устройство",
	MenuList:       "2 - Показать список",
	MenuRemove:     "3 - Удалить устройство",
	MenuExit:       "4 - Выход",
	PromptChoice:   "Выбор: ",
	PromptKind:     "Тип: ",
	PromptBrand:    "Бренд: ",
	PromptModel:    "Модель: ",
	PromptPrice:    "Цена (%d-%d): ",
	PromptPower:    "Мощность (%d-%d): ",
	PromptScreen:   "Диагональ (%g-%g): ",
	PromptRes:      "Разрешение: ",
	PromptSmartTV:  "Smart TV (Да/Нет): ",
	PromptFreq:     "Диапазон (FM/AM): ",
	PromptBT:       "Bluetooth (Да/Нет): ",
	PromptPresets:  "Пресеты (%d-%d): ",
	PromptPosition: "Номер для удаления: ",

	EnterValue:  "Введите значение.",
	EnterNumber: "Введите число от %v до %v.",
	EnterYesNo:  "Введите 1/0 или Да/Нет.",
	Added:       "Добавлено.",
	Removed:     "Удалено.",
	ListEmpty:   "Список пуст.",
	InvalidPos:  "Неверный номер.",
	Released:    "Освобождено %d объект(ов).",
	Finished:    "Работа завершена.",
	ItemHeader:  "#%d",
	ItemSummary: "#%d: %s",
	YesWords:    []string{"да", "д"},
	NoWords:     []string{"нет", "н"},
}

var (
	catalogs = []*Catalog{english, russian}
	matcher  = language.NewMatcher([]language.Tag{language.English, language.Russian})
)

// Default returns the English catalog.
func Default() *Catalog {
	return english
}

// Lookup returns the catalog best matching a BCP 47 locale such as "ru",
// "ru-RU" or "en-GB". Unknown or malformed locales fall back to English.
func Lookup(locale string) *Catalog {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		return english
	}
	_, idx, confidence := matcher.Match(tag)
	if confidence == language.No {
		return english
	}
	return catalogs[idx]
}

// ParseBool interprets a console answer. Digits, true/false, y/n and the
// yes/no words of every catalog are accepted regardless of the active locale.
func ParseBool(input string) (value bool, ok bool) {
	s := strings.ToLower(strings.TrimSpace(input))
	switch s {
	case "1", "true", "y":
		return true, true
	case "0", "false", "n":
		return false, true
	}
	for _, c := range catalogs {
		if slices.Contains(c.YesWords, s) {
			return true, true
		}
		if slices.Contains(c.NoWords, s) {
			return false, true
		}
	}
	return false, false
}
