// Command hashkey reads an admin key from stdin and prints the bcrypt hash
// to set as MENTORHUB_ADMIN_KEY_HASH.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dalemusser/mentorhub/internal/app/system/auth"
)

func main() {
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		log.Fatalf("read key: %v", err)
	}
	key := strings.TrimRight(line, "\r\n")
	if key == "" {
		log.Fatal("empty key")
	}
	hash, err := auth.HashAdminKey(key)
	if err != nil {
		log.Fatalf("hash key: %v", err)
	}
	fmt.Println(hash)
}
