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

package main

import (
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// Rendered course pages live for 30 minutes
	pageCacheExpiration = 30 * time.Minute
	pageCacheCleanup    = 5 * time.Minute
)

// NewPageCache creates the cache of glamour-rendered course pages,
// keyed by course ID
func NewPageCache() *cache.Cache {
	return cache.New(pageCacheExpiration, pageCacheCleanup)
}

func CachePage(c *cache.Cache, id string, page string) {
	c.Set(id, page, pageCacheExpiration)
}

func GetPage(c *cache.Cache, id string) string {
	val, ok := c.Get(id)
	if !ok {
		return ""
	}
	return val.(string)
}

// ForgetPages empties the cache. Pages embed the titles of their
// prerequisites, so removing one course can stale any of them.
func ForgetPages(c *cache.Cache) {
	c.Flush()
}

// GetOrRenderPage returns the cached page for id, rendering and caching
// it on a miss. A failed render is not cached.
func GetOrRenderPage(c *cache.Cache, id string, render func() (string, error)) (string, error) {
	if page := GetPage(c, id); page != "" {
		return page, nil
	}
	page, err := render()
	if err != nil {
		return "", err
	}
	CachePage(c, id, page)
	return page, nil
}
