package llm

import (
	"fmt"
	"time"

	"github.com/abcideas/leadflow/internal/entity"
)

// Canales reconocidos. Cualquier otro valor cae en la rama informal y sin
// asunto, nunca en error.
const (
	CanalEmail    = "email"
	CanalWhatsapp = "whatsapp"
	CanalLinkedin = "linkedin"
)

// Objetivos reconocidos. Un objetivo desconocido se trata como seguimiento.
const (
	ObjetivoConseguirLlamada = "conseguir_llamada"
	ObjetivoReactivar        = "reactivar"
	ObjetivoSeguimiento      = "seguimiento"
)

// CopyContext lleva los parámetros de generación. Tono e historial reciente
// viajan aquí como puntos de extensión: hoy no cambian la salida, pero son
// parte del contrato para que un modelo futuro pueda usarlos.
type CopyContext struct {
	Canal     string
	Objetivo  string
	Tono      string
	Recientes []*entity.Interaction
}

// Message es el mensaje generado. Nunca se persiste desde aquí; el caller
// decide si lo guarda como interacción o lo despacha.
type Message struct {
	Asunto      *string `json:"asunto"`
	Cuerpo      string  `json:"cuerpo"`
	Canal       string  `json:"canal"`
	GeneradoEn  string  `json:"generado_en"`
	EtapaFunnel string  `json:"etapa_funnel"`
	Temperatura string  `json:"temperatura"`
}

// GenerateMessage compone el siguiente mensaje de nutrición para un lead:
// saludo + cuerpo según etapa (con dolor, contexto de negocio y beneficio
// interpolados) + CTA + cierre. Función pura y total.
func GenerateMessage(lead *entity.Lead, copyCtx CopyContext) Message {
	nombre := lead.Nombre
	if nombre == "" {
		nombre = "allí"
	}

	empresa := lead.Empresa
	if empresa == "" {
		empresa = "tu negocio"
	}

	// Un lead sin segmentar recibe copy de consideration/tibio.
	etapa := entity.EtapaConsideration
	temp := entity.TempTibio
	if lead.Classification != nil {
		if lead.EtapaFunnel != "" {
			etapa = lead.EtapaFunnel
		}
		if lead.Temperatura != "" {
			temp = lead.Temperatura
		}
	}

	saludo, cierre := saludoYCierre(copyCtx.Canal, nombre)

	textoCompleto := lead.MensajeInicial + " " + lead.Necesidades + " " + lead.Sector + " " + lead.Fuente
	dolor := detectarDolor(textoCompleto)
	contexto := detectarContextoNegocio(lead)
	beneficio := beneficioPrincipal(etapa)
	cta := construirCTA(copyCtx.Objetivo, temp, copyCtx.Canal)

	// Cada plantilla de etapa interpola los cuatro fragmentos: empresa,
	// dolor, contexto de negocio y beneficio.
	var cuerpoBase string
	switch etapa {
	case entity.EtapaAwareness:
		cuerpoBase = fmt.Sprintf(
			"Por lo que comentaste, estás empezando a explorar cómo %s en %s. "+
				"Podemos ayudarte a %s. La idea es que ganes claridad y %s, sin presión.",
			dolor, empresa, contexto, beneficio,
		)
	case entity.EtapaDecision:
		cuerpoBase = fmt.Sprintf(
			"Por lo que nos has contado, ya tienes bastante claro el problema en %s y estás cerca de tomar una decisión. "+
				"Si trabajamos en %s, aplicado a tu contexto, podrás %s. Sobre esa base podremos ver %s.",
			empresa, dolor, beneficio, contexto,
		)
	default: // consideration
		cuerpoBase = fmt.Sprintf(
			"En %s ya has visto que %s. "+
				"Ahora estás valorando opciones para mejorar la forma en que gestionas tu flujo de oportunidades. "+
				"Si empezamos por ahí, será más fácil %s y, sobre esa base, podremos ver %s.",
			empresa, dolor, beneficio, contexto,
		)
	}

	cuerpo := saludo + "\n\n" + cuerpoBase + "\n\n" + cta + "\n\n" + cierre

	return Message{
		Asunto:      asuntoPara(copyCtx.Canal, copyCtx.Objetivo),
		Cuerpo:      cuerpo,
		Canal:       copyCtx.Canal,
		GeneradoEn:  time.Now().Format("2006-01-02T15:04:05"),
		EtapaFunnel: etapa,
		Temperatura: temp,
	}
}

// asuntoPara devuelve nil (no un string vacío) cuando el canal no lleva
// asunto, para que el caller distinga "sin asunto" de "asunto en blanco".
func asuntoPara(canal, objetivo string) *string {
	if canal != CanalEmail && canal != CanalLinkedin {
		return nil
	}

	var asunto string
	switch objetivo {
	case ObjetivoConseguirLlamada:
		asunto = "¿Vemos juntos cómo ordenar mejor tu flujo de oportunidades?"
	case ObjetivoReactivar:
		asunto = "¿Retomamos la conversación sobre tu sistema de seguimiento?"
	default:
		asunto = "Ideas para mejorar tu flujo de trabajo comercial"
	}
	return &asunto
}
