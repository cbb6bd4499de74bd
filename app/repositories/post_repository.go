package repositories

import (
	"time"

	"frontpage/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerPostRepository implements PostRepository using BadgerDB
type BadgerPostRepository struct {
	db *badger.DB
}

// NewBadgerPostRepository creates a new BadgerPostRepository
func NewBadgerPostRepository(db *badger.DB) *BadgerPostRepository {
	return &BadgerPostRepository{db: db}
}

// Create creates a new post
func (r *BadgerPostRepository) Create(post *models.Post) error {
	post.BeforeCreate()

	data, err := marshalEntity(post)
	if err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(postKey(post.ID), data)
	})
}

// GetByID retrieves a post by ID
func (r *BadgerPostRepository) GetByID(id string) (*models.Post, error) {
	var post models.Post

	err := r.db.View(func(txn *badger.Txn) error {
		return getPost(txn, id, &post)
	})

	if err != nil {
		return nil, err
	}
	return &post, nil
}

// List retrieves every post. The feed ranks the full collection at read
// time, so there is no index shortcut here.
func (r *BadgerPostRepository) List() ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(PostKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var post models.Post
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &post)
			})
			if err != nil {
				return err
			}
			posts = append(posts, &post)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// Count returns the total number of posts
func (r *BadgerPostRepository) Count() (int, error) {
	count := 0
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(PostKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Update updates an existing post
func (r *BadgerPostRepository) Update(post *models.Post) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := postKey(post.ID)

		// Verify post exists
		_, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		data, err := marshalEntity(post)
		if err != nil {
			return err
		}
		return txn.Set(key, data)
	})
}

// Delete deletes a post and the standalone records of its embedded comments
func (r *BadgerPostRepository) Delete(id string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		var post models.Post
		if err := getPost(txn, id, &post); err != nil {
			return err
		}

		for _, comment := range post.Comments {
			if err := txn.Delete(commentKey(comment.ID)); err != nil {
				return err
			}
		}

		return txn.Delete(postKey(id))
	})
}

// ApplyVote applies a toggle vote and recomputes the score inside a single
// transaction, so the stored score always matches the vote sets written in
// the same operation. Concurrent votes on the same post conflict at commit;
// the losing transaction is retried from a fresh read instead of dropping
// the other voter's write.
func (r *BadgerPostRepository) ApplyVote(postID, voterID string, direction models.VoteDirection) (*models.Post, error) {
	var post models.Post

	for {
		err := r.applyVoteTxn(postID, voterID, direction, &post)
		if err == badger.ErrConflict {
			// another vote on the same post committed first; re-read and
			// reapply on top of its write
			continue
		}
		if err != nil {
			return nil, err
		}
		return &post, nil
	}
}

func (r *BadgerPostRepository) applyVoteTxn(postID, voterID string, direction models.VoteDirection, post *models.Post) error {
	return r.db.Update(func(txn *badger.Txn) error {
		*post = models.Post{}
		if err := getPost(txn, postID, post); err != nil {
			return err
		}

		if err := post.Vote(voterID, direction); err != nil {
			return err
		}
		post.RecomputeScore()
		post.UpdatedAt = time.Now()

		data, err := marshalEntity(post)
		if err != nil {
			return err
		}
		return txn.Set(postKey(postID), data)
	})
}

// AttachComment appends a comment to the post document and writes the
// standalone comment record in the same transaction.
func (r *BadgerPostRepository) AttachComment(postID string, comment *models.Comment) error {
	return r.db.Update(func(txn *badger.Txn) error {
		var post models.Post
		if err := getPost(txn, postID, &post); err != nil {
			return err
		}

		comment.BeforeCreate()
		if err := post.AddComment(comment); err != nil {
			return err
		}
		post.UpdatedAt = time.Now()

		commentData, err := marshalEntity(comment)
		if err != nil {
			return err
		}
		if err := txn.Set(commentKey(comment.ID), commentData); err != nil {
			return err
		}

		postData, err := marshalEntity(&post)
		if err != nil {
			return err
		}
		return txn.Set(postKey(postID), postData)
	})
}

// DetachComment removes a comment from the post document and deletes the
// standalone comment record in the same transaction.
func (r *BadgerPostRepository) DetachComment(postID, commentID string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		var post models.Post
		if err := getPost(txn, postID, &post); err != nil {
			return err
		}

		if err := post.RemoveComment(commentID); err != nil {
			return ErrNotFound
		}
		post.UpdatedAt = time.Now()

		postData, err := marshalEntity(&post)
		if err != nil {
			return err
		}
		if err := txn.Set(postKey(postID), postData); err != nil {
			return err
		}

		return txn.Delete(commentKey(commentID))
	})
}

func getPost(txn *badger.Txn, id string, post *models.Post) error {
	item, err := txn.Get(postKey(id))
	if err == badger.ErrKeyNotFound {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	return item.Value(func(val []byte) error {
		return unmarshalEntity(val, post)
	})
}
