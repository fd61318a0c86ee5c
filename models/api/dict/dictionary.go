package dictapimodels

// DictionaryKind - вид справочника в объединенном списке
type DictionaryKind string

const (
	DictionaryKindDepartment DictionaryKind = "DEPARTMENT"
	DictionaryKindPosition   DictionaryKind = "POSITION"
	DictionaryKindLanguage   DictionaryKind = "LANGUAGE"
)

// DictionaryItem - элемент объединенного списка справочников.
// Kind определяет, какое из полей заполнено, остальные всегда nil.
type DictionaryItem struct {
	Kind       DictionaryKind  `json:"kind"`
	Department *DepartmentView `json:"department,omitempty"`
	Position   *PositionView   `json:"position,omitempty"`
	Language   *LanguageView   `json:"language,omitempty"`
}

func NewDepartmentItem(view DepartmentView) DictionaryItem {
	return DictionaryItem{
		Kind:       DictionaryKindDepartment,
		Department: &view,
	}
}

func NewPositionItem(view PositionView) DictionaryItem {
	return DictionaryItem{
		Kind:     DictionaryKindPosition,
		Position: &view,
	}
}

func NewLanguageItem(view LanguageView) DictionaryItem {
	return DictionaryItem{
		Kind:     DictionaryKindLanguage,
		Language: &view,
	}
}
