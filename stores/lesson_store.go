package stores

import (
	"strings"
	"sync"

	"github.com/stepsync/dance_marketplace/dataset"
	"github.com/stepsync/dance_marketplace/models"
)

// LessonStore captures the active lesson catalogue at construction time and
// layers the browsing state (favorites, search, category) on top. Favorites
// are keyed by user id; the staged search/category pair is a convenience for
// single-session use, Filter is the stateless path. The list does not
// refresh itself; RefreshLessons re-pulls from the dataset.
type LessonStore struct {
	mu               sync.RWMutex
	ds               *dataset.Dataset
	lessons          []models.Lesson
	favorites        map[string][]string
	searchQuery      string
	selectedCategory models.LessonCategory
}

func NewLessonStore(ds *dataset.Dataset) *LessonStore {
	return &LessonStore{
		ds:        ds,
		lessons:   ds.ActiveLessons(),
		favorites: make(map[string][]string),
	}
}

func (s *LessonStore) Lessons() []models.Lesson {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Lesson, len(s.lessons))
	copy(out, s.lessons)
	return out
}

// ToggleFavorite flips the lesson's membership in the user's favorites:
// favoriting twice restores the original state.
func (s *LessonStore) ToggleFavorite(userID, lessonID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := s.favorites[userID]
	for i, id := range ids {
		if id == lessonID {
			s.favorites[userID] = append(ids[:i], ids[i+1:]...)
			return
		}
	}
	s.favorites[userID] = append(ids, lessonID)
}

func (s *LessonStore) IsFavorite(userID, lessonID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.favorites[userID] {
		if id == lessonID {
			return true
		}
	}
	return false
}

func (s *LessonStore) FavoriteIDs(userID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := s.favorites[userID]
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

func (s *LessonStore) FavoriteLessons(userID string) []models.Lesson {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Lesson
	for _, l := range s.lessons {
		for _, id := range s.favorites[userID] {
			if l.ID == id {
				out = append(out, l)
				break
			}
		}
	}
	return out
}

func (s *LessonStore) SetSearchQuery(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchQuery = q
}

// SetCategory narrows FilteredLessons to one category; the empty category
// means all.
func (s *LessonStore) SetCategory(c models.LessonCategory) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedCategory = c
}

// Filter applies the category filter first, then the free-text search as a
// case-insensitive substring over title, description and category. The
// result is the intersection of both filters. Stateless: the staged
// browsing state is neither read nor written, so concurrent callers cannot
// see each other's parameters.
func (s *LessonStore) Filter(category models.LessonCategory, query string) []models.Lesson {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filterLessons(s.lessons, category, query)
}

// FilteredLessons is Filter over the staged browsing state (SetCategory and
// SetSearchQuery).
func (s *LessonStore) FilteredLessons() []models.Lesson {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filterLessons(s.lessons, s.selectedCategory, s.searchQuery)
}

func filterLessons(lessons []models.Lesson, category models.LessonCategory, query string) []models.Lesson {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []models.Lesson
	for _, l := range lessons {
		if category != "" && l.Category != category {
			continue
		}
		if q != "" && !lessonTextMatches(l, q) {
			continue
		}
		out = append(out, l)
	}
	return out
}

func lessonTextMatches(l models.Lesson, loweredQuery string) bool {
	return strings.Contains(strings.ToLower(l.Title), loweredQuery) ||
		strings.Contains(strings.ToLower(l.Description), loweredQuery) ||
		strings.Contains(strings.ToLower(string(l.Category)), loweredQuery)
}

// RefreshLessons re-pulls the active catalogue from the dataset, discarding
// anything that was only in this store's copy.
func (s *LessonStore) RefreshLessons() {
	fresh := s.ds.ActiveLessons()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lessons = fresh
}
