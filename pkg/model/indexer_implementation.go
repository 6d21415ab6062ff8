package model

import "log"

type cycleIndexer struct {
	vertices uint64
	length   uint64
}

func (indexer *cycleIndexer) Index(vertex, position uint64) uint64 {
	if vertex < 1 || vertex > indexer.vertices || position < 1 || position > indexer.length {
		log.Panicf("attributes %v~%v are out of range", vertex, position)
	}
	return (vertex-1)*indexer.length + position
}

func (indexer *cycleIndexer) Attributes(variable uint64) (vertex uint64, position uint64) {
	if variable < 1 || variable > indexer.vertices*indexer.length {
		log.Panicf("variable %v is out of range", variable)
	}
	vertex = (variable-1)/indexer.length + 1
	position = (variable-1)%indexer.length + 1

	return vertex, position
}
