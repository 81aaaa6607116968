package utils

import (
	"fmt"
	"strings"
)

// ArtworkURL builds the official-artwork URL for a species index.
// The result depends only on baseURL and pokedexNumber.
func ArtworkURL(baseURL string, pokedexNumber int) string {
	return fmt.Sprintf("%s/%d.png", strings.TrimRight(baseURL, "/"), pokedexNumber)
}
