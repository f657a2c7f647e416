package parser

import "git.lost.host/meutraa/eotm/internal/game"

type Parser interface {
	Parse(file string) (*game.Score, error)
}
