package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeStringRe(t *testing.T) {
	valid := []string{"pm_visa_1", "co_bank_1", "a.b-c_d", "ABC123"}
	for _, s := range valid {
		assert.True(t, safeStringRe.MatchString(s), s)
	}

	invalid := []string{"", "pm visa", "pm;drop", "<script>", "a/b"}
	for _, s := range invalid {
		assert.False(t, safeStringRe.MatchString(s), s)
	}
}

func TestSanitizeStruct(t *testing.T) {
	extra := "  <i>note</i>  "
	req := struct {
		Name  string
		Extra *string
		Count int
	}{
		Name:  "  <b>alice</b>  ",
		Extra: &extra,
		Count: 7,
	}

	SanitizeStruct(&req)

	assert.Equal(t, "&lt;b&gt;alice&lt;/b&gt;", req.Name)
	assert.Equal(t, "&lt;i&gt;note&lt;/i&gt;", *req.Extra)
	assert.Equal(t, 7, req.Count)
}

func TestSanitizeStructIgnoresNonStructs(t *testing.T) {
	s := "  raw  "
	SanitizeStruct(&s)
	assert.Equal(t, "  raw  ", s)

	SanitizeStruct(nil)
	SanitizeStruct(42)
}
