package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStudentCreateAndGet(t *testing.T) {
	ts := newTestServices(t)

	student := ts.mustStudent(t, "Ada", "ada@example.edu")
	require.NotZero(t, student.ID)

	got, err := ts.students.Get(context.Background(), student.ID)
	require.NoError(t, err)
	require.Equal(t, "Ada", got.Name)
	require.Equal(t, "ada@example.edu", got.Email)
}

func TestStudentUpdatePartial(t *testing.T) {
	ts := newTestServices(t)
	student := ts.mustStudent(t, "Ada", "ada@example.edu")

	// A blank name leaves the stored name untouched.
	updated, err := ts.students.Update(context.Background(), "test", student.ID, StudentUpdateInput{
		Email: "lovelace@example.edu",
	})
	require.NoError(t, err)
	require.Equal(t, "Ada", updated.Name)
	require.Equal(t, "lovelace@example.edu", updated.Email)

	got, err := ts.students.Get(context.Background(), student.ID)
	require.NoError(t, err)
	require.Equal(t, "Ada", got.Name)
	require.Equal(t, "lovelace@example.edu", got.Email)
}

func TestStudentUpdateNotFound(t *testing.T) {
	ts := newTestServices(t)

	_, err := ts.students.Update(context.Background(), "test", 404, StudentUpdateInput{Name: "Ghost"})
	requireCode(t, err, "NOT_FOUND")
}

func TestStudentDelete(t *testing.T) {
	ts := newTestServices(t)
	student := ts.mustStudent(t, "Ada", "ada@example.edu")

	require.NoError(t, ts.students.Delete(context.Background(), "test", student.ID))

	_, err := ts.students.Get(context.Background(), student.ID)
	requireCode(t, err, "NOT_FOUND")

	err = ts.students.Delete(context.Background(), "test", student.ID)
	requireCode(t, err, "NOT_FOUND")
}

func TestStudentList(t *testing.T) {
	ts := newTestServices(t)
	ts.mustStudent(t, "Ada", "ada@example.edu")
	ts.mustStudent(t, "Alan", "alan@example.edu")

	list, err := ts.students.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
}
