// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package source

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/cybrota/courseplanner/coursetree"
)

// Runs against a scratch database, e.g.
//
//	COURSEPLANNER_TEST_DATABASE_URL=postgres://localhost/courseplanner_test go test ./source
func TestPostgresRead(t *testing.T) {
	url := os.Getenv("COURSEPLANNER_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("COURSEPLANNER_TEST_DATABASE_URL not set")
	}
	ctx := context.Background()

	pool, err := pgxpool.New(ctx, url)
	require.NoError(t, err)
	defer pool.Close()

	_, err = pool.Exec(ctx, `
DROP TABLE IF EXISTS course_prerequisites;
DROP TABLE IF EXISTS courses;
CREATE TABLE courses (course_id text PRIMARY KEY, title text NOT NULL);
CREATE TABLE course_prerequisites (
    course_id text NOT NULL REFERENCES courses,
    prerequisite_id text NOT NULL,
    position int NOT NULL DEFAULT 0
);
INSERT INTO courses VALUES
    ('CSCI100', 'Introduction to Computer Science'),
    ('CSCI400', 'Large Software Development');
INSERT INTO course_prerequisites VALUES
    ('CSCI400', 'CSCI350', 1),
    ('CSCI400', 'CSCI301', 0);`)
	require.NoError(t, err)

	courses, err := (&Postgres{URL: url}).Read(ctx)
	require.NoError(t, err)
	require.Equal(t, []coursetree.Course{
		{ID: "CSCI100", Title: "Introduction to Computer Science"},
		{ID: "CSCI400", Title: "Large Software Development", Prerequisites: []string{"CSCI301", "CSCI350"}},
	}, courses)
}

func TestPostgresBadURL(t *testing.T) {
	_, err := (&Postgres{URL: "postgres://%zz"}).Read(context.Background())
	require.Error(t, err)
}
