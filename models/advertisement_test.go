package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClosedEnumerations(t *testing.T) {
	assert.True(t, Category("women").Valid())
	assert.False(t, Category("pets").Valid())
	assert.False(t, Category("").Valid())

	assert.True(t, SubCategory("beauty_clinic").Valid())
	assert.True(t, SubCategory("children_salon").Valid())
	assert.False(t, SubCategory("barbershop").Valid())

	assert.True(t, Governorate("mubarak_al_kabeer").Valid())
	assert.False(t, Governorate("dubai").Valid())
}
