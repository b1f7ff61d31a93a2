package controllers

import (
	"github.com/ronak1998bacancy/E-commerce/catalog"
	"github.com/ronak1998bacancy/E-commerce/recommender"
)

var Store *catalog.Store
var Engine *recommender.Engine

// Setup wires the shared catalog into the handlers. Call once at startup.
func Setup(store *catalog.Store) {
	Store = store
	Engine = recommender.New(store)
}
