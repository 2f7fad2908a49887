// Command lsfs is a thin CLI front end for keypair generation, signing,
// and verification against the lsfs signature scheme.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"lsfs/entropy"
	"lsfs/lsfs"
	"lsfs/params"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	switch os.Args[1] {
	case "keygen":
		runKeygen(os.Args[2:])
	case "sign":
		runSign(os.Args[2:])
	case "open":
		runOpen(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: lsfs <keygen|sign|open> [flags]")
}

func parseLevel(name string) params.Level {
	level, err := params.ParseLevel(name)
	if err != nil {
		log.Fatalf("level: %v", err)
	}
	return level
}

func runKeygen(args []string) {
	fs := flag.NewFlagSet("keygen", flag.ExitOnError)
	levelName := fs.String("level", "128pq", "security level (64pq, 128cl, 96pq, 192cl, 128pq, 256cl)")
	skPath := fs.String("sk", "sk.bin", "secret key output path")
	pkPath := fs.String("pk", "pk.bin", "public key output path")
	fs.Parse(args)

	level := parseLevel(*levelName)
	sk, pk, err := lsfs.GenerateKey(level, entropy.System)
	if err != nil {
		log.Fatalf("keygen: %v", err)
	}
	if err := os.WriteFile(*skPath, sk.Bytes(), 0600); err != nil {
		log.Fatalf("writing secret key: %v", err)
	}
	if err := os.WriteFile(*pkPath, pk.Bytes(), 0644); err != nil {
		log.Fatalf("writing public key: %v", err)
	}
	fmt.Printf("wrote %s (%d bytes) and %s (%d bytes)\n", *skPath, len(sk.Bytes()), *pkPath, len(pk.Bytes()))
}

func runSign(args []string) {
	fs := flag.NewFlagSet("sign", flag.ExitOnError)
	levelName := fs.String("level", "128pq", "security level")
	skPath := fs.String("sk", "sk.bin", "secret key path")
	msgPath := fs.String("msg", "", "message file path")
	outPath := fs.String("out", "signed.bin", "signed-message output path (message || signature)")
	fs.Parse(args)

	if *msgPath == "" {
		log.Fatal("-msg is required")
	}
	level := parseLevel(*levelName)
	skBytes, err := os.ReadFile(*skPath)
	if err != nil {
		log.Fatalf("reading secret key: %v", err)
	}
	sk, err := lsfs.ParseSecretKey(level, skBytes)
	if err != nil {
		log.Fatalf("parsing secret key: %v", err)
	}
	message, err := os.ReadFile(*msgPath)
	if err != nil {
		log.Fatalf("reading message: %v", err)
	}
	sig, err := lsfs.Sign(sk, message)
	if err != nil {
		log.Fatalf("signing: %v", err)
	}
	signed := append(append([]byte(nil), message...), sig...)
	if err := os.WriteFile(*outPath, signed, 0644); err != nil {
		log.Fatalf("writing signed message: %v", err)
	}
	fmt.Printf("wrote %s (%d bytes)\n", *outPath, len(signed))
}

func runOpen(args []string) {
	fs := flag.NewFlagSet("open", flag.ExitOnError)
	levelName := fs.String("level", "128pq", "security level")
	pkPath := fs.String("pk", "pk.bin", "public key path")
	signedPath := fs.String("signed", "signed.bin", "signed-message path (message || signature)")
	outPath := fs.String("out", "", "recovered message output path (stdout if empty)")
	fs.Parse(args)

	level := parseLevel(*levelName)
	pkBytes, err := os.ReadFile(*pkPath)
	if err != nil {
		log.Fatalf("reading public key: %v", err)
	}
	pk, err := lsfs.ParsePublicKey(level, pkBytes)
	if err != nil {
		log.Fatalf("parsing public key: %v", err)
	}
	signed, err := os.ReadFile(*signedPath)
	if err != nil {
		log.Fatalf("reading signed message: %v", err)
	}
	message, err := lsfs.Open(pk, signed)
	if err != nil {
		log.Fatalf("reject: %v", err)
	}
	if *outPath == "" {
		os.Stdout.Write(message)
		return
	}
	if err := os.WriteFile(*outPath, message, 0644); err != nil {
		log.Fatalf("writing recovered message: %v", err)
	}
	fmt.Printf("accepted, wrote %s (%d bytes)\n", *outPath, len(message))
}
