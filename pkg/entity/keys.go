package entity

import "strconv"

// UserKey selects a user either by id or by its unique name.
type UserKey struct {
	ID   int64
	Name string
}

func UserByID(id int64) UserKey {
	return UserKey{ID: id}
}

func UserByName(name string) UserKey {
	return UserKey{Name: name}
}

func (k UserKey) ByName() bool {
	return k.Name != ""
}

func (k UserKey) String() string {
	if k.ByName() {
		return "name=" + k.Name
	}
	return "id=" + strconv.FormatInt(k.ID, 10)
}

// BookKey selects a book either by id or by its unique name.
type BookKey struct {
	ID   int64
	Name string
}

func BookByID(id int64) BookKey {
	return BookKey{ID: id}
}

func BookByName(name string) BookKey {
	return BookKey{Name: name}
}

func (k BookKey) ByName() bool {
	return k.Name != ""
}

func (k BookKey) String() string {
	if k.ByName() {
		return "name=" + k.Name
	}
	return "id=" + strconv.FormatInt(k.ID, 10)
}
