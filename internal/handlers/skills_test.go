package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"jobboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSkillAttachesToCaller(t *testing.T) {
	db := newTestDB(t)
	e := newTestEcho()
	h := NewSkillHandler(db)

	user := createUser(t, db, "Bob", "bob@example.com", models.RoleUser)

	body := `{"name":"Go","years_of_experience":"3-5 years","justification":"built services"}`
	c, rec := jsonRequest(e, http.MethodPost, "/api/skills/create", body, user)
	require.NoError(t, h.CreateSkill(c))

	env := decodeEnvelope(t, rec)
	require.Equal(t, 200, env.Status, "errors: %s", env.Errors)

	var count int64
	require.NoError(t, db.Table("user_skill").
		Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpdateSkillRequiresHoldingIt(t *testing.T) {
	db := newTestDB(t)
	e := newTestEcho()
	h := NewSkillHandler(db)

	holder := createUser(t, db, "Holder", "holder@example.com", models.RoleUser)
	outsider := createUser(t, db, "Outsider", "outsider@example.com", models.RoleUser)

	skill := models.Skill{Name: "Go", YearsOfExperience: models.ExperienceThreeToFive, Justification: "built services"}
	require.NoError(t, db.Create(&skill).Error)
	require.NoError(t, db.Model(holder).Association("Skills").Append(&skill))

	body := fmt.Sprintf(`{"skill_id":%d,"name":"Rust","years_of_experience":"1-3 years","justification":"rewrote it"}`, skill.ID)

	c, rec := jsonRequest(e, http.MethodPost, "/api/skills/update", body, outsider)
	require.NoError(t, h.UpdateSkill(c))
	assert.Equal(t, "User do not have skill", decodeEnvelope(t, rec).Message)

	var unchanged models.Skill
	require.NoError(t, db.First(&unchanged, skill.ID).Error)
	assert.Equal(t, "Go", unchanged.Name)
}

func TestUpdateSkillMutatesSharedRow(t *testing.T) {
	db := newTestDB(t)
	e := newTestEcho()
	h := NewSkillHandler(db)

	first := createUser(t, db, "First", "first@example.com", models.RoleUser)
	second := createUser(t, db, "Second", "second@example.com", models.RoleUser)

	skill := models.Skill{Name: "Go", YearsOfExperience: models.ExperienceThreeToFive, Justification: "built services"}
	require.NoError(t, db.Create(&skill).Error)
	require.NoError(t, db.Model(first).Association("Skills").Append(&skill))
	require.NoError(t, db.Model(second).Association("Skills").Append(&skill))

	body := fmt.Sprintf(`{"skill_id":%d,"name":"Golang","years_of_experience":"5-7 years","justification":"shipped it"}`, skill.ID)
	c, rec := jsonRequest(e, http.MethodPost, "/api/skills/update", body, first)
	require.NoError(t, h.UpdateSkill(c))
	require.Equal(t, "skill updated successfully", decodeEnvelope(t, rec).Message)

	// The row is shared: the second holder sees the change too.
	var loaded models.User
	require.NoError(t, db.Preload("Skills").First(&loaded, second.ID).Error)
	require.Len(t, loaded.Skills, 1)
	assert.Equal(t, "Golang", loaded.Skills[0].Name)
	assert.Equal(t, models.ExperienceFiveToSeven, loaded.Skills[0].YearsOfExperience)
}

func TestDeleteSkillRequiresHoldingIt(t *testing.T) {
	db := newTestDB(t)
	e := newTestEcho()
	h := NewSkillHandler(db)

	holder := createUser(t, db, "Holder", "holder@example.com", models.RoleUser)
	outsider := createUser(t, db, "Outsider", "outsider@example.com", models.RoleUser)

	skill := models.Skill{Name: "Go", YearsOfExperience: models.ExperienceThreeToFive, Justification: "built services"}
	require.NoError(t, db.Create(&skill).Error)
	require.NoError(t, db.Model(holder).Association("Skills").Append(&skill))

	body := fmt.Sprintf(`{"skill_id":%d}`, skill.ID)
	c, rec := jsonRequest(e, http.MethodPost, "/api/skills/delete", body, outsider)
	require.NoError(t, h.DeleteSkill(c))
	assert.Equal(t, "User do not have skill", decodeEnvelope(t, rec).Message)

	// The shared row survives for its holder.
	var remaining models.Skill
	assert.NoError(t, db.First(&remaining, skill.ID).Error)
}

func TestDeleteSkillTwiceReportsAlreadyDeleted(t *testing.T) {
	db := newTestDB(t)
	e := newTestEcho()
	h := NewSkillHandler(db)

	user := createUser(t, db, "Bob", "bob@example.com", models.RoleUser)

	skill := models.Skill{Name: "Go", YearsOfExperience: models.ExperienceThreeToFive, Justification: "built services"}
	require.NoError(t, db.Create(&skill).Error)
	require.NoError(t, db.Model(user).Association("Skills").Append(&skill))

	body := fmt.Sprintf(`{"skill_id":%d}`, skill.ID)

	c, rec := jsonRequest(e, http.MethodPost, "/api/skills/delete", body, user)
	require.NoError(t, h.DeleteSkill(c))
	assert.Equal(t, "skill deleted successfully", decodeEnvelope(t, rec).Message)

	c, rec = jsonRequest(e, http.MethodPost, "/api/skills/delete", body, user)
	require.NoError(t, h.DeleteSkill(c))
	env := decodeEnvelope(t, rec)
	assert.Equal(t, 400, env.Status)
	assert.Equal(t, "skill already deleted", env.Message)
}
