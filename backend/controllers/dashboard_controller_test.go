package controllers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboard(t *testing.T) {
	app := newTestApp(t)
	token := registerUser(t, app, "dash@example.com")

	_, _ = doRequest(t, app, "POST", "/api/courses/course-001/enroll", token, nil)
	_, _ = doRequest(t, app, "POST", "/api/courses/course-002/enroll", token, nil)
	_, _ = doRequest(t, app, "PUT", "/api/courses/course-001/progress", token,
		map[string]interface{}{"progress": 100})
	_, _ = doRequest(t, app, "POST", "/api/quiz/submit", token, map[string]interface{}{
		"courseId": "course-001",
		"answers":  map[string]string{"q1": "b"},
	})

	resp, result := doRequest(t, app, "GET", "/api/dashboard", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	stats := result["stats"].(map[string]interface{})
	assert.Equal(t, float64(2), stats["totalEnrolled"])
	assert.Equal(t, float64(50), stats["avgProgress"])
	assert.Equal(t, float64(1), stats["completed"])
	assert.Equal(t, float64(1), stats["quizzesTaken"])
	// All activity happened today, so the streak is exactly one day.
	assert.Equal(t, float64(1), stats["streak"])

	enrolled := result["enrolledCourses"].([]interface{})
	require.Len(t, enrolled, 2)
	first := enrolled[0].(map[string]interface{})
	assert.NotNil(t, first["course"])
	assert.NotNil(t, first["enrollment"])

	user := result["user"].(map[string]interface{})
	_, hasHash := user["passwordHash"]
	assert.False(t, hasHash)
}

func TestDashboardStats(t *testing.T) {
	app := newTestApp(t)
	token := registerUser(t, app, "dashstats@example.com")

	resp, result := doRequest(t, app, "GET", "/api/dashboard/stats", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	stats := result["stats"].(map[string]interface{})
	assert.Equal(t, float64(0), stats["totalEnrolled"])
	assert.Equal(t, float64(0), stats["avgProgress"])
	assert.Equal(t, float64(0), stats["completed"])
}
