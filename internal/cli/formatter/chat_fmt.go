package formatter

// FormatChatWelcome renders the chat REPL banner.
func FormatChatWelcome() string {
	return Header("molemi chat") + "\n" +
		Dim("Messages run through the full pipeline and are logged. Type /quit to exit.")
}

// ChatPrompt returns the styled input prompt prefix.
func ChatPrompt() string {
	return StyleGreen.Render("you> ")
}

// FormatChatQuestion echoes the user's submitted message.
func FormatChatQuestion(text string) string {
	return StyleGreen.Render("you> ") + StyleFg.Render(text)
}

// FormatChatReply renders the assistant's answer.
func FormatChatReply(reply string) string {
	return StyleBlue.Render("bot> ") + StyleFg.Render(reply) + "\n"
}

// FormatChatError renders a pipeline failure.
func FormatChatError(err error) string {
	return StyleRed.Render("error: ") + err.Error() + "\n"
}
