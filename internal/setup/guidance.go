package setup

import "fmt"

// PrintTools lists recommended AI development tools
func (b *Bootstrapper) PrintTools() {
	fmt.Fprintln(b.Out)
	fmt.Fprintln(b.Out, "🤖 Checking AI Development Tools:")
	fmt.Fprintln(b.Out, "   📝 Recommended AI Tools:")
	fmt.Fprintln(b.Out, "   • GitHub Copilot (VS Code extension)")
	fmt.Fprintln(b.Out, "   • ChatGPT/Claude (web interfaces)")
	fmt.Fprintln(b.Out, "   • AI-powered IDEs (Cursor, Replit, etc.)")
	fmt.Fprintln(b.Out, "   "+b.Styles.Tip("Install these tools for enhanced development experience"))
}

// PrintNextSteps prints what to do after setup
func (b *Bootstrapper) PrintNextSteps() {
	fmt.Fprintln(b.Out)
	fmt.Fprintln(b.Out, b.Styles.Header("🎉 Setup Complete!"))
	fmt.Fprintln(b.Out, "📝 Next Steps:")
	fmt.Fprintln(b.Out, "1. Activate your virtual environment:")
	fmt.Fprintln(b.Out, "   "+b.activateCommand())

	fmt.Fprintln(b.Out, "2. Verify installation:")
	fmt.Fprintln(b.Out, "   python -m pytest --version")
	fmt.Fprintln(b.Out, "   black --version")
	fmt.Fprintln(b.Out, "   flake8 --version")

	fmt.Fprintln(b.Out, "3. Read the documentation:")
	fmt.Fprintln(b.Out, "   • docs/getting-started.md")
	fmt.Fprintln(b.Out, "   • guides/github-workflow.md")
	fmt.Fprintln(b.Out, "   • guides/vibe-coding.md")

	fmt.Fprintln(b.Out, "4. Make your first contribution:")
	fmt.Fprintln(b.Out, "   • Check issues labeled 'good first issue'")
	fmt.Fprintln(b.Out, "   • Follow the GitHub workflow guide")
	fmt.Fprintln(b.Out, "   • Use AI assistance with proper attribution")

	fmt.Fprintln(b.Out)
	fmt.Fprintln(b.Out, "🚀 Happy Coding!")
}
