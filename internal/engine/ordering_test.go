package engine

import (
	"testing"

	"github.com/minsukang/stagegate/internal/domain"
	"github.com/minsukang/stagegate/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func projectWithMassProduction(date string) *domain.Project {
	p := &domain.Project{ID: "p1", Name: "Widget"}
	p.Stage1.Set("massProductionDate", date)
	return p
}

func TestValidateDateField_RequiredBlank(t *testing.T) {
	reg := schema.Default()
	v := ValidateDateField(reg, &domain.Project{}, domain.Stage1, "launchDate", "")
	require.NotNil(t, v)
	assert.Equal(t, ViolationRequired, v.Code)
	assert.Contains(t, v.Message, "Launch")
}

func TestValidateDateField_OptionalBlankIsValid(t *testing.T) {
	reg := schema.Default()
	v := ValidateDateField(reg, &domain.Project{}, domain.Stage2, "equipmentSetupDate", "")
	assert.Nil(t, v)
}

func TestValidateDateField_InvalidFormat(t *testing.T) {
	reg := schema.Default()
	for _, bad := range []string{"06/15/2025", "2025-13-01", "2025-02-30", "soon"} {
		v := ValidateDateField(reg, &domain.Project{}, domain.Stage1, "launchDate", bad)
		require.NotNil(t, v, "input %q", bad)
		assert.Equal(t, ViolationInvalidDate, v.Code)
	}
}

// Spec'd ceiling scenario: mass production 2025-06-01, stage-3 candidate
// 2025-06-15 fails, 2025-05-15 passes.
func TestValidateDateField_MassProductionCeiling(t *testing.T) {
	reg := schema.Default()
	p := projectWithMassProduction("2025-06-01")

	v := ValidateDateField(reg, p, domain.Stage3, "bomCompletionDate", "2025-06-15")
	require.NotNil(t, v)
	assert.Equal(t, ViolationAfterCeiling, v.Code)
	assert.Equal(t, "massProductionDate", v.Against)
	assert.Contains(t, v.Message, "mass production")

	assert.Nil(t, ValidateDateField(reg, p, domain.Stage3, "bomCompletionDate", "2025-05-15"))
}

func TestValidateDateField_CeilingIsInclusive(t *testing.T) {
	reg := schema.Default()
	p := projectWithMassProduction("2025-06-01")
	assert.Nil(t, ValidateDateField(reg, p, domain.Stage2, "pilotProductionDate", "2025-06-01"))
}

func TestValidateDateField_CeilingIgnoresStage1(t *testing.T) {
	reg := schema.Default()
	p := projectWithMassProduction("2025-06-01")
	// Launch after mass production is unusual but not a ceiling violation.
	assert.Nil(t, ValidateDateField(reg, p, domain.Stage1, "launchDate", "2025-07-01"))
}

func TestValidateDateField_PredecessorOrdering(t *testing.T) {
	reg := schema.Default()
	p := &domain.Project{}
	p.Stage2.Set("pilotProductionDate", "2025-03-10")

	v := ValidateDateField(reg, p, domain.Stage2, "techTransferDate", "2025-03-01")
	require.NotNil(t, v)
	assert.Equal(t, ViolationBeforePred, v.Code)
	assert.Equal(t, "pilotProductionDate", v.Against)
	assert.Contains(t, v.Message, "Pilot Production")

	assert.Nil(t, ValidateDateField(reg, p, domain.Stage2, "techTransferDate", "2025-03-10"))
	assert.Nil(t, ValidateDateField(reg, p, domain.Stage2, "techTransferDate", "2025-03-20"))
}

func TestValidateDateField_SuccessorOrdering(t *testing.T) {
	reg := schema.Default()
	p := &domain.Project{}
	p.Stage3.Set("priceRegistrationDate", "2025-02-01")

	// Editing the predecessor past its stored successor is also flagged.
	v := ValidateDateField(reg, p, domain.Stage3, "bomCompletionDate", "2025-02-10")
	require.NotNil(t, v)
	assert.Equal(t, ViolationAfterSucc, v.Code)
	assert.Equal(t, "priceRegistrationDate", v.Against)
}

func TestValidateDateField_Stage3Chain(t *testing.T) {
	reg := schema.Default()
	p := &domain.Project{}
	p.Stage3.Set("bomCompletionDate", "2025-01-10")
	p.Stage3.Set("priceRegistrationDate", "2025-01-20")
	p.Stage3.Set("firstPartsOrderDate", "2025-02-01")

	v := ValidateDateField(reg, p, domain.Stage3, "partsReceiptDate", "2025-01-25")
	require.NotNil(t, v)
	assert.Equal(t, ViolationBeforePred, v.Code)
	assert.Equal(t, "firstPartsOrderDate", v.Against)

	assert.Nil(t, ValidateDateField(reg, p, domain.Stage3, "partsReceiptDate", "2025-02-14"))
}

func TestValidateDateField_CeilingWinsOverChain(t *testing.T) {
	reg := schema.Default()
	p := projectWithMassProduction("2025-06-01")
	p.Stage3.Set("bomCompletionDate", "2025-07-01")

	// Candidate violates both the ceiling and the predecessor rule; the
	// ceiling is checked first.
	v := ValidateDateField(reg, p, domain.Stage3, "priceRegistrationDate", "2025-06-20")
	require.NotNil(t, v)
	assert.Equal(t, ViolationAfterCeiling, v.Code)
}

func TestValidateDateField_MalformedStoredDatesAreIgnored(t *testing.T) {
	reg := schema.Default()
	p := &domain.Project{}
	p.Stage1.Set("massProductionDate", "not-a-date")
	p.Stage2.Set("pilotProductionDate", "garbage")

	assert.Nil(t, ValidateDateField(reg, p, domain.Stage2, "techTransferDate", "2025-03-01"))
}

func TestValidateDateField_NonDateFieldIsIgnored(t *testing.T) {
	reg := schema.Default()
	assert.Nil(t, ValidateDateField(reg, &domain.Project{}, domain.Stage1, "productGroup", ""))
	assert.Nil(t, ValidateDateField(reg, &domain.Project{}, domain.Stage1, "noSuchField", "2025-01-01"))
}
