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
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cybrota/courseplanner/coursetree"
)

// Schema expected by the Postgres source:
//
//	CREATE TABLE courses (
//	    course_id text PRIMARY KEY,
//	    title     text NOT NULL
//	);
//	CREATE TABLE course_prerequisites (
//	    course_id       text NOT NULL REFERENCES courses,
//	    prerequisite_id text NOT NULL,
//	    position        int  NOT NULL DEFAULT 0
//	);
const coursesQuery = `
SELECT c.course_id,
       c.title,
       COALESCE(array_agg(p.prerequisite_id ORDER BY p.position, p.prerequisite_id)
                FILTER (WHERE p.prerequisite_id IS NOT NULL), '{}') AS prerequisites
FROM courses c
LEFT JOIN course_prerequisites p ON p.course_id = c.course_id
GROUP BY c.course_id, c.title
ORDER BY c.course_id`

// Postgres reads the catalog from a PostgreSQL database
type Postgres struct {
	URL string
}

func (s *Postgres) Name() string {
	return "postgres"
}

func (s *Postgres) Read(ctx context.Context) ([]coursetree.Course, error) {
	pool, err := pgxpool.New(ctx, s.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to course database: %w", err)
	}
	defer pool.Close()

	rows, err := pool.Query(ctx, coursesQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	var courses []coursetree.Course
	for rows.Next() {
		var c coursetree.Course
		if err := rows.Scan(&c.ID, &c.Title, &c.Prerequisites); err != nil {
			return nil, fmt.Errorf("failed to scan course row: %w", err)
		}
		if len(c.Prerequisites) == 0 {
			c.Prerequisites = nil
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read courses: %w", err)
	}
	return courses, nil
}
