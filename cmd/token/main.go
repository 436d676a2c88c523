// token emite un JWT firmado con JWT_SECRET para operar la API.
//
// Uso: go run ./cmd/token -user ana -role operator
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/invoice-layout/pkg/config"
	"github.com/jhoicas/invoice-layout/pkg/jwt"
)

func main() {
	user := flag.String("user", "admin", "user_id del token")
	role := flag.String("role", jwt.RoleAdmin, "admin | operator")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if cfg.JWT.Secret == "" {
		fmt.Fprintln(os.Stderr, "JWT_SECRET vacío: la API no exige token")
		os.Exit(1)
	}
	tok, err := jwt.Generate(cfg.JWT.Secret, *user, *role, cfg.JWT.Issuer, cfg.JWT.Expiration)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generar token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(tok)
}
