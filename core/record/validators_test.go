package record_test

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zyraworkhub/zyra/core/record"
	testutil "github.com/zyraworkhub/zyra/tests"
)

func TestNewSpeakerApplication_Validate(t *testing.T) {
	validate, _ := testutil.NewValidator()

	t.Run("cleans fields", func(t *testing.T) {
		nsa := record.NewSpeakerApplication{
			Name:      "  Awe Mukulu ",
			Email:     " AWE@Test.CD ",
			Bio:       "bio",
			Expertise: []string{" design "},
			Abstract:  "abstract",
		}
		require.NoError(t, nsa.Validate(validate))
		assert.Equal(t, "Awe Mukulu", nsa.Name)
		assert.Equal(t, "awe@test.cd", nsa.Email)
		assert.Equal(t, []string{"design"}, nsa.Expertise)
	})

	t.Run("missing required fields", func(t *testing.T) {
		nsa := record.NewSpeakerApplication{Email: "awe@test.cd"}
		err := nsa.Validate(validate)
		require.Error(t, err)
		assert.IsType(t, validator.ValidationErrors{}, err)
	})

	t.Run("blank name", func(t *testing.T) {
		nsa := record.NewSpeakerApplication{
			Name:      "   ",
			Email:     "awe@test.cd",
			Bio:       "bio",
			Expertise: []string{"design"},
			Abstract:  "abstract",
		}
		assert.Error(t, nsa.Validate(validate))
	})

	t.Run("bad url", func(t *testing.T) {
		nsa := record.NewSpeakerApplication{
			Name:        "Awe",
			Email:       "awe@test.cd",
			Bio:         "bio",
			Expertise:   []string{"design"},
			Abstract:    "abstract",
			LinkedinURL: "not-a-url",
		}
		assert.Error(t, nsa.Validate(validate))
	})
}

func TestNewContactSubmission_Validate(t *testing.T) {
	validate, _ := testutil.NewValidator()

	t.Run("valid", func(t *testing.T) {
		ncs := record.NewContactSubmission{
			Name:         "King",
			Email:        "king@test.cd",
			Message:      "hello",
			InterestType: record.InterestGeneral,
		}
		assert.NoError(t, ncs.Validate(validate))
	})

	t.Run("interest type optional", func(t *testing.T) {
		ncs := record.NewContactSubmission{Name: "King", Email: "king@test.cd", Message: "hello"}
		assert.NoError(t, ncs.Validate(validate))
	})

	t.Run("unknown interest type", func(t *testing.T) {
		ncs := record.NewContactSubmission{
			Name:         "King",
			Email:        "king@test.cd",
			Message:      "hello",
			InterestType: "sponsorship",
		}
		assert.Error(t, ncs.Validate(validate))
	})

	t.Run("bad email", func(t *testing.T) {
		ncs := record.NewContactSubmission{Name: "King", Email: "lol", Message: "hello"}
		assert.Error(t, ncs.Validate(validate))
	})
}

func TestNewAdminEntry_Validate(t *testing.T) {
	validate, _ := testutil.NewValidator()

	t.Run("valid", func(t *testing.T) {
		nae := record.NewAdminEntry{Email: "Princip@Test.CD"}
		require.NoError(t, nae.Validate(validate))
		assert.Equal(t, "princip@test.cd", nae.Email)
	})

	t.Run("email required", func(t *testing.T) {
		nae := record.NewAdminEntry{Name: "Principal"}
		assert.Error(t, nae.Validate(validate))
	})
}
