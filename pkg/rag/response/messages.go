package response

import (
	"fmt"

	"guru-ai-be/internal/constant"
)

// Fixed user-facing messages. Students never see a raw internal error,
// every failure path degrades to one of these in the active medium.

const OutOfCreditsMessage = "⚠️ අයියෝ පුතේ! ඔයාගේ දවසේ ප්‍රශ්න ප්‍රමාණය ඉවරයි. Unlimited Plan එක අරගන්න."

// NoNotesMessage tells the student nothing matched their question.
func NoNotesMessage(interpretedQuestion, medium string) string {
	if medium == constant.MediumEnglish {
		return fmt.Sprintf("😕 Sorry, I couldn't find notes about **%s**. Please try asking another way.", interpretedQuestion)
	}
	return fmt.Sprintf("😕 සමාවෙන්න, **%s** ගැන සටහන් සොයාගැනීමට නොහැකි විය. කරුණාකර වෙනත් විදියකට අසා බලන්න.", interpretedQuestion)
}

// CannotUnderstandMessage is used when query interpretation fails.
func CannotUnderstandMessage(medium string) string {
	if medium == constant.MediumEnglish {
		return "Sorry, I couldn't understand the question. Please try again."
	}
	return "සමාවෙන්න, මට ප්‍රශ්නය තේරුම් ගන්න බැරි වුණා. කරුණාකර නැවත අසන්න."
}

// BusyMessage is used when answer generation exhausts its retries.
func BusyMessage(medium string) string {
	if medium == constant.MediumEnglish {
		return "System busy. Please try again."
	}
	return "සමාවෙන්න, තාක්ෂණික දෝෂයක්. කරුණාකර නැවත උත්සාහ කරන්න."
}
