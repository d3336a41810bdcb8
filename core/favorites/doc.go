// Package favorites holds the set of products the shopper has marked as
// liked. Add and Remove are idempotent; the set is persisted whole under the
// "mis_favoritos" key on every mutation and keeps insertion order so views
// can render a stable list.
package favorites
