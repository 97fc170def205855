package valentine

import (
	"github.com/MiraiSubject/CoteValentines2023/command/def"
	"github.com/MiraiSubject/CoteValentines2023/handler"
)

// RegisterHandlers registers all handlers for the valentine package.
func RegisterHandlers() {
	handler.AddCommandHandler(def.SendLetterCommand.Name, SendLetterCommandHandler)
	handler.AddAutocompleteHandler(def.SendLetterCommand.Name, RecipientAutocompleteHandler)
	handler.AddCommandHandler(def.PublishCommand.Name, PublishCommandHandler)
	handler.AddCommandHandler(def.AllowLettersCommand.Name, AllowLettersCommandHandler)
	handler.AddCommandHandler(def.AddRecipientCommand.Name, AddRecipientCommandHandler)
	handler.AddCommandHandler(def.ImportRecipientsCommand.Name, ImportRecipientsCommandHandler)
	handler.AddCommandHandler(def.CreatePanelCommand.Name, CreatePanelCommandHandler)

	// Panel flow: button opens a modal, the modal leads to the shared preview.
	handler.AddComponentHandler("create_letter_button", CreateLetterButtonHandler)
	handler.AddModalHandler("letter_modal", LetterModalHandler)

	// Shared preview buttons.
	handler.AddComponentHandler("letter_submit", SubmitLetterHandler)
	handler.AddComponentHandler("cancel_letter", CancelLetterHandler)

	// Retraction flow on audit-channel messages.
	handler.AddComponentHandler("delete_letter", DeleteLetterButtonHandler)
	handler.AddModalHandler("delete_letter_modal", DeleteLetterModalHandler)

	handler.AddModalHandler("import_recipients_modal", ImportRecipientsModalHandler)
}
