package schema

import "github.com/minsukang/stagegate/internal/domain"

type FieldKind string

const (
	// KindPlain is a free-text attribute, filled iff non-blank after trimming.
	KindPlain FieldKind = "plain"
	// KindDate is an ISO date paired with an execution flag of the same name.
	KindDate FieldKind = "date"
)

// Field declares one stage field. All computation is driven off this table;
// nothing in the engine concatenates field name strings.
type Field struct {
	Name     string
	Kind     FieldKind
	Required bool
	Label    string
	Category domain.EventCategory
	// Predecessor names a date field in the same stage whose stored value
	// must not come after this field's value.
	Predecessor string
}

// RequiredFieldSet is the per-stage requirement declaration consumed by the
// progress calculator.
type RequiredFieldSet struct {
	Plain    []string
	Dates    []string
	Optional []string
}

// Registry is the static, read-only declaration of stage fields. It is
// shared freely across callers and never mutated at runtime.
type Registry struct {
	stages map[domain.StageName][]Field
}

// NewRegistry builds a registry from an explicit stage table. Used by tests
// that need degenerate schemas; production code uses Default.
func NewRegistry(stages map[domain.StageName][]Field) Registry {
	return Registry{stages: stages}
}

// Default returns the stagegate field catalog.
func Default() Registry {
	return NewRegistry(map[domain.StageName][]Field{
		domain.Stage1: {
			{Name: "productGroup", Kind: KindPlain, Required: true, Label: "Product Group"},
			{Name: "manufacturer", Kind: KindPlain, Required: true, Label: "Manufacturer"},
			{Name: "productManager", Kind: KindPlain, Required: true, Label: "Product Manager"},
			{Name: "modelName", Kind: KindPlain, Label: "Model Name"},
			{Name: "launchDate", Kind: KindDate, Required: true, Label: "Launch", Category: domain.CategoryLaunch},
			{Name: "massProductionDate", Kind: KindDate, Required: true, Label: "Mass Production", Category: domain.CategoryProduction},
		},
		domain.Stage2: {
			{Name: "productionSite", Kind: KindPlain, Required: true, Label: "Production Site"},
			{Name: "pilotProductionDate", Kind: KindDate, Required: true, Label: "Pilot Production", Category: domain.CategoryProduction},
			{Name: "techTransferDate", Kind: KindDate, Required: true, Label: "Tech Transfer", Category: domain.CategoryProduction, Predecessor: "pilotProductionDate"},
			{Name: "qualityApprovalDate", Kind: KindDate, Required: true, Label: "Quality Approval", Category: domain.CategoryQuality, Predecessor: "techTransferDate"},
			{Name: "equipmentSetupDate", Kind: KindDate, Label: "Equipment Setup", Category: domain.CategoryAdmin},
		},
		domain.Stage3: {
			{Name: "serviceManager", Kind: KindPlain, Required: true, Label: "Service Manager"},
			{Name: "bomCompletionDate", Kind: KindDate, Required: true, Label: "BOM Completion", Category: domain.CategoryAdmin},
			{Name: "priceRegistrationDate", Kind: KindDate, Required: true, Label: "Price Registration", Category: domain.CategoryAdmin, Predecessor: "bomCompletionDate"},
			{Name: "firstPartsOrderDate", Kind: KindDate, Required: true, Label: "First Parts Order", Category: domain.CategoryService, Predecessor: "priceRegistrationDate"},
			{Name: "partsReceiptDate", Kind: KindDate, Required: true, Label: "Parts Receipt", Category: domain.CategoryService, Predecessor: "firstPartsOrderDate"},
			{Name: "serviceManualDate", Kind: KindDate, Label: "Service Manual", Category: domain.CategoryService},
			{Name: "technicalTrainingDate", Kind: KindDate, Label: "Technical Training", Category: domain.CategoryService},
		},
	})
}

// Fields returns the declared fields for a stage, or nil for unknown stages.
func (r Registry) Fields(stage domain.StageName) []Field {
	return r.stages[stage]
}

// Lookup returns the declaration for a single field.
func (r Registry) Lookup(stage domain.StageName, name string) (Field, bool) {
	for _, f := range r.stages[stage] {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// RequiredFields returns the per-stage requirement sets. Unknown stage
// names yield empty sets rather than an error: the progress calculator
// degrades to a zero score instead of failing a dashboard render.
func (r Registry) RequiredFields(stage domain.StageName) RequiredFieldSet {
	var set RequiredFieldSet
	for _, f := range r.stages[stage] {
		switch {
		case f.Required && f.Kind == KindPlain:
			set.Plain = append(set.Plain, f.Name)
		case f.Required && f.Kind == KindDate:
			set.Dates = append(set.Dates, f.Name)
		default:
			set.Optional = append(set.Optional, f.Name)
		}
	}
	return set
}
