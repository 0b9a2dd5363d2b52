package main

import "github.com/yixuqiu/page-spy-web/internal/cmd"

func main() {
	cmd.Execute()
}
