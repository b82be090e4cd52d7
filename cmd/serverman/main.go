// Command serverman manages a minibook deployment: it bootstraps the .env
// configuration with freshly generated access tokens, and can erase all
// stored data (database tables and cover images).
package main

import (
	"bufio"
	"context"
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"
	"unicode"

	"minibook/internal/infra/db"
	"minibook/internal/infra/images"
	"minibook/internal/pkg/config"

	"github.com/joho/godotenv"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const envFile = ".env"

func main() {
	eraseData := flag.Bool("e", false, "erase the database and stored images")
	flag.BoolVar(eraseData, "erase-data", false, "erase the database and stored images")
	force := flag.Bool("f", false, "force an operation without prompting")
	flag.BoolVar(force, "force", false, "force an operation without prompting")
	flag.Parse()

	var err error
	if *eraseData {
		err = runEraseData(*force)
	} else {
		err = runConfigServer(*force)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "serverman:", err)
		os.Exit(1)
	}
}

func runConfigServer(force bool) error {
	if _, err := os.Stat(envFile); err == nil && !force {
		if !confirm("The config file already exists. " +
			"If you proceed, the file will be overwritten.\n" +
			"Do you want to proceed with this operation [y/N]: ") {
			fmt.Println("The operation was canceled!")
			return nil
		}
	}

	userToken, err := newToken()
	if err != nil {
		return err
	}
	adminToken, err := newToken()
	if err != nil {
		return err
	}

	fmt.Println("This server uses Pix as a payment method.")
	fmt.Println("Please provide the receiver's name and Pix key.")
	fmt.Println()

	pixName := stripDiacritics(prompt("Pix receiver's name: "))
	pixKey := prompt("Pix receiver's key: ")

	var b strings.Builder
	b.WriteString("DB_HOST=localhost\n")
	b.WriteString("DB_PORT=5432\n")
	b.WriteString("DB_USER=minibook\n")
	b.WriteString("DB_PASSWORD=minibook\n")
	b.WriteString("DB_NAME=minibook\n")
	b.WriteString("API_TOKEN=" + userToken + "\n")
	b.WriteString("API_TOKEN_ADMIN=" + adminToken + "\n")
	b.WriteString("PIX_NAME=" + pixName + "\n")
	b.WriteString("PIX_KEY=" + pixKey + "\n")

	if err := os.WriteFile(envFile, []byte(b.String()), 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", envFile, err)
	}

	fmt.Println("A new .env file was created!")
	return nil
}

func runEraseData(force bool) error {
	if !force {
		if !confirm("Are you sure you want to erase the whole data?\n" +
			"This action can not be undone [y/N]: ") {
			fmt.Println("The operation was canceled!")
			return nil
		}
	}

	_ = godotenv.Load()
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()
	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := db.DropSchema(ctx, pool); err != nil {
		return err
	}

	store, err := images.NewStore(cfg.Images)
	if err != nil {
		return err
	}
	if err := store.RemoveAll(); err != nil {
		return err
	}

	fmt.Println("Data was erased successfully!")
	return nil
}

func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

func prompt(msg string) string {
	fmt.Print(msg)
	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func confirm(msg string) bool {
	return strings.HasPrefix(strings.ToUpper(prompt(msg)), "Y")
}

// stripDiacritics folds accented characters to their base form; the payee
// name ends up inside the payment payload, which is ASCII-only.
func stripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
