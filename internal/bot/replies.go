package bot

import (
	"fmt"
	"strings"
	"time"
)

// Reply — one outbound item of a turn. When File is set the item is an
// attachment with Caption; otherwise a plain text message. Delay is the
// pause taken before sending, to keep a human typing cadence.
type Reply struct {
	Delay   time.Duration
	Text    string
	File    string
	Caption string
}

const (
	textAskFulfillment = "Deseja fazer o pedido para *Retirada* ou *Entrega*? 🛍️🚚"
	textAskAddress     = "Por favor, envie o endereço completo para a entrega 🏠"
	textAskPayment     = "Perfeito! Qual será a forma de pagamento? 💳 Pix, Cartão ou Espécie?"
	textAddressSaved   = "Endereço anotado! Agora, qual será a forma de pagamento? 💳 Pix, Cartão ou Espécie?"
	textAskChange      = "Gostaria que levássemos troco para quanto? 💰"
	textConfirm        = "Tudo certo! Em instantes confirmaremos seu pedido. Muito obrigado 😄🍽️"

	textRetryFulfillment = "Por favor, responda com *Retirada* ou *Entrega*."
	textRetryPayment     = "Por favor, informe: *Pix*, *Cartão* ou *Espécie*."

	menuCaption = "📄 *Cardápio Atualizado*"
)

// greetingSequence opens a new conversation: greeting, menu notice, the menu
// file itself, then the fulfillment question.
func greetingSequence(name, menuFile string, d time.Duration) []Reply {
	return []Reply{
		{Delay: d, Text: fmt.Sprintf("Olá, %s! Seja bem-vindo ao *Restaurante Delícia na Brasa*! 🔥", firstName(name))},
		{Delay: 2 * d, Text: "Já vou te enviar o nosso cardápio em PDF para você escolher à vontade. 😋"},
		{Delay: 2 * d, File: menuFile, Caption: menuCaption},
		{Delay: 2 * d, Text: textAskFulfillment},
	}
}

func closedNotice(openHour, closeHour int) []Reply {
	return []Reply{{
		Text: fmt.Sprintf(
			"Olá! Nosso restaurante atende apenas entre *%02d:00 e %02d:00*. Por favor, entre em contato nesse horário. 🍽️",
			openHour, closeHour,
		),
	}}
}

func changeConfirmation(changeFor string, d time.Duration) []Reply {
	return []Reply{{
		Delay: d,
		Text:  fmt.Sprintf("Certo! Levaremos troco para *%s*. Seu pedido será confirmado em breve. 😄🍽️", changeFor),
	}}
}

func textReply(text string, d time.Duration) []Reply {
	return []Reply{{Delay: d, Text: text}}
}

func firstName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "cliente"
	}
	if i := strings.IndexByte(name, ' '); i > 0 {
		return name[:i]
	}
	return name
}
