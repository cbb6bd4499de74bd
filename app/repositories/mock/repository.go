package mock

import (
	"sync"
	"time"

	"frontpage/app/models"
	"frontpage/app/repositories"
)

// PostRepository is an in-memory PostRepository for tests.
type PostRepository struct {
	posts map[string]*models.Post
	order []string
	mutex sync.RWMutex

	// FailWith, when set, is returned by every method.
	FailWith error
}

// UserRepository is an in-memory UserRepository for tests.
type UserRepository struct {
	users      map[string]*models.User
	byUsername map[string]string
	mutex      sync.RWMutex

	FailWith error
}

func NewPostRepository() *PostRepository {
	return &PostRepository{
		posts: make(map[string]*models.Post),
	}
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:      make(map[string]*models.User),
		byUsername: make(map[string]string),
	}
}

// PostRepository implementation

func (m *PostRepository) Create(post *models.Post) error {
	if m.FailWith != nil {
		return m.FailWith
	}
	m.mutex.Lock()
	defer m.mutex.Unlock()

	post.BeforeCreate()
	m.posts[post.ID] = post
	m.order = append(m.order, post.ID)
	return nil
}

func (m *PostRepository) GetByID(id string) (*models.Post, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	copied := *post
	return &copied, nil
}

func (m *PostRepository) List() ([]*models.Post, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	posts := make([]*models.Post, 0, len(m.posts))
	for _, id := range m.order {
		if post, exists := m.posts[id]; exists {
			copied := *post
			posts = append(posts, &copied)
		}
	}
	return posts, nil
}

func (m *PostRepository) Count() (int, error) {
	if m.FailWith != nil {
		return 0, m.FailWith
	}
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.posts), nil
}

func (m *PostRepository) Update(post *models.Post) error {
	if m.FailWith != nil {
		return m.FailWith
	}
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[post.ID]; !exists {
		return repositories.ErrNotFound
	}
	m.posts[post.ID] = post
	return nil
}

func (m *PostRepository) Delete(id string) error {
	if m.FailWith != nil {
		return m.FailWith
	}
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.posts, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *PostRepository) ApplyVote(postID, voterID string, direction models.VoteDirection) (*models.Post, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	m.mutex.Lock()
	defer m.mutex.Unlock()

	post, exists := m.posts[postID]
	if !exists {
		return nil, repositories.ErrNotFound
	}

	if err := post.Vote(voterID, direction); err != nil {
		return nil, err
	}
	post.RecomputeScore()
	post.UpdatedAt = time.Now()

	copied := *post
	return &copied, nil
}

func (m *PostRepository) AttachComment(postID string, comment *models.Comment) error {
	if m.FailWith != nil {
		return m.FailWith
	}
	m.mutex.Lock()
	defer m.mutex.Unlock()

	post, exists := m.posts[postID]
	if !exists {
		return repositories.ErrNotFound
	}

	comment.BeforeCreate()
	if err := post.AddComment(comment); err != nil {
		return err
	}
	post.UpdatedAt = time.Now()
	return nil
}

func (m *PostRepository) DetachComment(postID, commentID string) error {
	if m.FailWith != nil {
		return m.FailWith
	}
	m.mutex.Lock()
	defer m.mutex.Unlock()

	post, exists := m.posts[postID]
	if !exists {
		return repositories.ErrNotFound
	}

	if err := post.RemoveComment(commentID); err != nil {
		return repositories.ErrNotFound
	}
	post.UpdatedAt = time.Now()
	return nil
}

// UserRepository implementation

func (m *UserRepository) Create(user *models.User) error {
	if m.FailWith != nil {
		return m.FailWith
	}
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, taken := m.byUsername[user.Username]; taken {
		return repositories.ErrUsernameTaken
	}

	user.BeforeCreate()
	m.users[user.ID] = user
	m.byUsername[user.Username] = user.ID
	return nil
}

func (m *UserRepository) GetByID(id string) (*models.User, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	user, exists := m.users[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (m *UserRepository) GetByUsername(username string) (*models.User, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	id, exists := m.byUsername[username]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	copied := *m.users[id]
	return &copied, nil
}
